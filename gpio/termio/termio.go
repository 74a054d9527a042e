// Package termio simulates the pedalboard on a terminal. It puts stdin into
// raw mode and maps one key per configured input pin, in configuration order,
// along the key row matching the default pedal letters. A keystroke carries no
// release event, so a press holds the pin low for a short window and terminal
// auto-repeat extends it while the key stays down.
//
// Ctrl-C and q raise an interrupt for the process since raw mode swallows the
// terminal's own signal handling.
package termio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/pedalier/pedalier/gpio"
)

func init() {
	gpio.Register("term", func() gpio.Driver { return New() })
}

// keyRow assigns keys to input pins in the order the pins are configured.
const keyRow = "zsxdcvgbhnjm,./123456"

// holdWindow is how long a keystroke keeps its pin pressed.
const holdWindow = 250 * time.Millisecond

// Driver reads raw keystrokes from stdin and presents them as pin levels.
type Driver struct {
	mu    sync.Mutex
	open  bool
	prev  *term.State
	next  int
	byKey map[byte]*simPin
}

// New returns an unopened terminal simulator driver.
func New() *Driver {
	return &Driver{byKey: make(map[byte]*simPin)}
}

func (d *Driver) Name() string { return "term" }

func (d *Driver) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.open {
		return fmt.Errorf("term: already open")
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("term: stdin is not a terminal")
	}
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("term: raw mode: %w", err)
	}
	d.prev = prev
	d.open = true
	go d.readKeys()
	return nil
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return nil
	}
	d.open = false
	// Unblock the reader goroutine; stdin is a tty, so it is pollable.
	_ = os.Stdin.SetReadDeadline(time.Now())
	err := term.Restore(int(os.Stdin.Fd()), d.prev)
	if err != nil {
		return fmt.Errorf("term: restore: %w", err)
	}
	return nil
}

func (d *Driver) Input(bcm uint8) (gpio.Input, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return nil, fmt.Errorf("term: not open")
	}
	if d.next >= len(keyRow) {
		return nil, fmt.Errorf("term: out of keys after %d inputs", d.next)
	}
	sp := &simPin{}
	d.byKey[keyRow[d.next]] = sp
	d.next++
	return sp, nil
}

// Output pins have nothing to show on a raw terminal; writes are accepted and
// dropped so lamp wiring keeps working against the simulator.
func (d *Driver) Output(bcm uint8) (gpio.Output, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return nil, fmt.Errorf("term: not open")
	}
	return nullOutput{}, nil
}

func (d *Driver) readKeys() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		b := buf[0]
		if b == 0x03 || b == 'q' {
			if p, perr := os.FindProcess(os.Getpid()); perr == nil {
				_ = p.Signal(os.Interrupt)
			}
			continue
		}
		d.mu.Lock()
		sp := d.byKey[b]
		d.mu.Unlock()
		if sp != nil {
			sp.press(holdWindow)
		}
	}
}

type simPin struct {
	mu    sync.Mutex
	until time.Time
}

func (sp *simPin) press(hold time.Duration) {
	sp.mu.Lock()
	sp.until = time.Now().Add(hold)
	sp.mu.Unlock()
}

func (sp *simPin) Read() gpio.Level {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if time.Now().Before(sp.until) {
		return gpio.Low
	}
	return gpio.High
}

type nullOutput struct{}

func (nullOutput) Set(bool) error { return nil }
