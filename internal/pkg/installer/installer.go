// Package installer wraps the external access-gateway packaging, install and
// service-control commands.
package installer

import (
	"context"
	"fmt"

	"agw-agent/internal/pkg/config"
	"agw-agent/internal/pkg/logging"
	"agw-agent/internal/port"
)

const (
	snapName       = "magma-access-gateway"
	installScript  = "magma-access-gateway.install"
	postInstallCmd = "magma-access-gateway.post-install"
	serviceName    = "magma@magmad"
)

// Installer runs the external gateway lifecycle commands through the
// CommandRunner port.
type Installer struct {
	runner port.CommandRunner
}

// New creates an Installer backed by the given command runner.
func New(runner port.CommandRunner) *Installer {
	return &Installer{runner: runner}
}

// InstallSnap installs the access gateway snap package.
func (i *Installer) InstallSnap(ctx context.Context) error {
	_, _, err := i.runner.Run(ctx, "snap", "install", snapName, "--classic", "--edge")
	if err != nil {
		return fmt.Errorf("failed to install %s snap: %w", snapName, err)
	}
	return nil
}

// Install runs the gateway install script with arguments derived from the
// configuration and returns the script's exit code.
func (i *Installer) Install(ctx context.Context, cfg config.GatewayConfig) (int, error) {
	arguments := BuildArguments(cfg)
	code, output, err := i.runner.Run(ctx, installScript, arguments...)
	if err != nil {
		return -1, fmt.Errorf("failed to run install script: %w", err)
	}
	logging.WithComponent("installer").Info(string(output))
	return code, nil
}

// ServiceEnabled reports whether the gateway service is enabled on the host.
func (i *Installer) ServiceEnabled(ctx context.Context) bool {
	code, _, err := i.runner.Run(ctx, "systemctl", "is-enabled", serviceName)
	return err == nil && code == 0
}

// ServiceRunning reports whether the gateway service is active.
func (i *Installer) ServiceRunning(ctx context.Context) bool {
	code, _, err := i.runner.Run(ctx, "systemctl", "is-active", serviceName)
	return err == nil && code == 0
}

// RestartService stops all gateway units and starts the supervisor service.
func (i *Installer) RestartService(ctx context.Context) error {
	if _, _, err := i.runner.Run(ctx, "service", "magma@*", "stop"); err != nil {
		return fmt.Errorf("failed to stop gateway services: %w", err)
	}
	if _, _, err := i.runner.Run(ctx, "service", serviceName, "start"); err != nil {
		return fmt.Errorf("failed to start gateway service: %w", err)
	}
	return nil
}

// Reboot schedules a host reboot in one minute.
func (i *Installer) Reboot(ctx context.Context) error {
	if _, _, err := i.runner.Run(ctx, "shutdown", "--reboot", "+1"); err != nil {
		return fmt.Errorf("failed to schedule reboot: %w", err)
	}
	return nil
}

// PostInstallChecks runs the gateway's post-install check command and returns
// its exit code.
func (i *Installer) PostInstallChecks(ctx context.Context) (int, error) {
	code, _, err := i.runner.Run(ctx, postInstallCmd)
	if err != nil {
		return -1, fmt.Errorf("failed to run post-install checks: %w", err)
	}
	return code, nil
}
