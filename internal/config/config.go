// Package config defines the command line grammar for the pedalier binary.
package config

import (
	"github.com/pedalier/pedalier/internal/cmd"
)

// LogConfig groups the logging flags shared by every command.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"PEDALIER_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" default:"" env:"PEDALIER_LOG_FILE"`
	RawFile string `name:"raw-file" help:"Hex-dump every emitted report and message to this file" default:"" env:"PEDALIER_LOG_RAW_FILE"`
}

// CLI is the top-level kong grammar.
type CLI struct {
	Log        LogConfig `embed:"" prefix:"log."`
	ConfigPath string    `name:"config" help:"Path to a configuration file" type:"path" env:"PEDALIER_CONFIG"`

	Run       cmd.Run           `cmd:"" help:"Bridge the pedalboard to a USB host as keyboard or MIDI"`
	Monitor   cmd.Monitor       `cmd:"" help:"Log pedal transitions without driving any backend"`
	Ports     cmd.Ports         `cmd:"" help:"List the system MIDI output ports"`
	Layout    cmd.Layout        `cmd:"" help:"Print the pedal table"`
	Config    cmd.ConfigCommand `cmd:"" help:"Configuration file helpers"`
	Install   cmd.Install       `cmd:"" help:"Install and start the pedalier systemd service"`
	Uninstall cmd.Uninstall     `cmd:"" help:"Stop and remove the pedalier systemd service"`
}
