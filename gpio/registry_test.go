package gpio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedalier/pedalier/gpio"
)

type stubDriver struct {
	name string
}

func (d *stubDriver) Open() error                           { return nil }
func (d *stubDriver) Close() error                          { return nil }
func (d *stubDriver) Input(bcm uint8) (gpio.Input, error)   { return nil, nil }
func (d *stubDriver) Output(bcm uint8) (gpio.Output, error) { return nil, nil }
func (d *stubDriver) Name() string                          { return d.name }

func TestDriverRegistry(t *testing.T) {
	tests := []struct {
		name         string
		registerName string
		lookupName   string
		shouldFind   bool
	}{
		{
			name:         "register and retrieve exact match",
			registerName: "stubone",
			lookupName:   "stubone",
			shouldFind:   true,
		},
		{
			name:         "case insensitive lookup",
			registerName: "StubTwo",
			lookupName:   "stubtwo",
			shouldFind:   true,
		},
		{
			name:         "case insensitive lookup uppercase",
			registerName: "stubthree",
			lookupName:   "STUBTHREE",
			shouldFind:   true,
		},
		{
			name:         "lookup non-existent driver",
			registerName: "stubfour",
			lookupName:   "stubfive",
			shouldFind:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regName := tt.name + "_" + tt.registerName
			gpio.Register(regName, func() gpio.Driver { return &stubDriver{name: regName} })

			lookupName := tt.name + "_" + tt.lookupName
			drv, err := gpio.New(lookupName)

			if tt.shouldFind {
				require.NoError(t, err)
				require.NotNil(t, drv)
				assert.Equal(t, regName, drv.Name())
			} else {
				require.Error(t, err)
				assert.Nil(t, drv)
				assert.Contains(t, err.Error(), "unknown gpio driver")
			}
		})
	}
}

func TestDriversSorted(t *testing.T) {
	gpio.Register("zz_sorted_probe", func() gpio.Driver { return &stubDriver{} })
	gpio.Register("aa_sorted_probe", func() gpio.Driver { return &stubDriver{} })

	names := gpio.Drivers()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i], "driver names are sorted")
	}
	assert.Contains(t, names, "aa_sorted_probe")
	assert.Contains(t, names, "zz_sorted_probe")
}

func TestNewReturnsFreshInstances(t *testing.T) {
	gpio.Register("fresh_probe", func() gpio.Driver { return &stubDriver{name: "fresh_probe"} })

	first, err := gpio.New("fresh_probe")
	require.NoError(t, err)
	second, err := gpio.New("fresh_probe")
	require.NoError(t, err)
	assert.NotSame(t, first, second, "each New call builds its own driver")
}

func TestLevelSemantics(t *testing.T) {
	assert.True(t, gpio.Low.Pressed(), "pull-up wiring: grounded pin means pressed")
	assert.False(t, gpio.High.Pressed())
	assert.Equal(t, "low", gpio.Low.String())
	assert.Equal(t, "high", gpio.High.String())
}
