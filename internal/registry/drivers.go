package registry

import (
	_ "github.com/pedalier/pedalier/gpio/memio"    // Register in-memory driver
	_ "github.com/pedalier/pedalier/gpio/periphio" // Register periph.io driver
	_ "github.com/pedalier/pedalier/gpio/rpio"     // Register Raspberry Pi driver
	_ "github.com/pedalier/pedalier/gpio/termio"   // Register terminal simulator driver
)
