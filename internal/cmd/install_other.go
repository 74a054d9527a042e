//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
)

func install(logger *slog.Logger) error {
	return errors.New("service install requires systemd and is only supported on linux")
}

func uninstall(logger *slog.Logger) error {
	return errors.New("service uninstall requires systemd and is only supported on linux")
}
