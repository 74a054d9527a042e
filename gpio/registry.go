package gpio

import (
	"fmt"
	"sort"
	"sync"
)

var (
	driverRegistry   = make(map[string]func() Driver)
	driverRegistryMu sync.RWMutex
)

// Register registers a driver factory under a name. This should be called
// from driver package init() functions. The name is case-insensitive and
// will be lowercased.
func Register(name string, factory func() Driver) {
	driverRegistryMu.Lock()
	defer driverRegistryMu.Unlock()
	driverRegistry[toLower(name)] = factory
}

// New returns a fresh, unopened driver instance by registry name. Name
// lookup is case-insensitive.
func New(name string) (Driver, error) {
	driverRegistryMu.RLock()
	factory, ok := driverRegistry[toLower(name)]
	driverRegistryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown gpio driver %q (available: %v)", name, Drivers())
	}
	return factory(), nil
}

// Drivers returns the sorted names of all registered drivers.
func Drivers() []string {
	driverRegistryMu.RLock()
	defer driverRegistryMu.RUnlock()
	names := make([]string, 0, len(driverRegistry))
	for name := range driverRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toLower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
