package cmd

import "log/slog"

// Install registers pedalier as a systemd service so the bridge starts at boot.
type Install struct{}

func (i *Install) Run(logger *slog.Logger) error {
	return install(logger)
}

// Uninstall stops and removes the pedalier systemd service.
type Uninstall struct{}

func (u *Uninstall) Run(logger *slog.Logger) error {
	return uninstall(logger)
}
