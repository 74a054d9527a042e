package keyboard

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// DefaultGadgetPath is where the kernel exposes the first configfs HID
// function.
const DefaultGadgetPath = "/dev/hidg0"

// Gadget writes reports to a configfs HID gadget device node. Writes to an
// hidg node block indefinitely while no host has enumerated the gadget, so
// every write is guarded by poll(2) with a timeout; a detached host surfaces
// as an error instead of wedging the polling loop mid-cycle.
type Gadget struct {
	file    *os.File
	timeout time.Duration
}

// OpenGadget opens the device node for writing. timeout bounds how long a
// single report may wait for the host.
func OpenGadget(path string, timeout time.Duration) (*Gadget, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("keyboard: opening hid gadget: %w", err)
	}
	return &Gadget{file: f, timeout: timeout}, nil
}

func (g *Gadget) Write(p []byte) (int, error) {
	fds := []unix.PollFd{{Fd: int32(g.file.Fd()), Events: unix.POLLOUT}}
	for {
		n, err := unix.Poll(fds, int(g.timeout/time.Millisecond))
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("polling %s: %w", g.file.Name(), err)
		}
		if n == 0 {
			return 0, fmt.Errorf("%s not writable after %v, host detached?", g.file.Name(), g.timeout)
		}
		break
	}
	return g.file.Write(p)
}

func (g *Gadget) Close() error {
	return g.file.Close()
}
