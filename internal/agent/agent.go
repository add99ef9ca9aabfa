// Package agent dispatches lifecycle signals for the access gateway. Each
// signal handler is a short synchronous sequence: run a command, check its
// exit code, report a status.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agw-agent/internal/pkg/config"
	"agw-agent/internal/pkg/controlproxy"
	"agw-agent/internal/pkg/installer"
	"agw-agent/internal/pkg/logging"
	"agw-agent/internal/pkg/secrets"
	"agw-agent/internal/pkg/validate"
	"agw-agent/internal/port"
)

// mmeInterface is the renamed core-facing (S1/MME) interface whose address is
// published to the adjacent core service.
const mmeInterface = "eth1"

// SignalKind enumerates the lifecycle signals delivered by the hosting
// runtime.
type SignalKind int

const (
	SignalInstall SignalKind = iota
	SignalStart
	SignalConfigChanged
	SignalOrchestratorAvailable
	SignalCoreRelationJoined
)

// String returns the signal name as used in logs and on the command line.
func (k SignalKind) String() string {
	switch k {
	case SignalInstall:
		return "install"
	case SignalStart:
		return "start"
	case SignalConfigChanged:
		return "config-changed"
	case SignalOrchestratorAvailable:
		return "orchestrator-available"
	case SignalCoreRelationJoined:
		return "core-relation-joined"
	}
	return fmt.Sprintf("signal(%d)", int(k))
}

// Signal is a lifecycle signal with its payload. Only
// SignalOrchestratorAvailable carries one.
type Signal struct {
	Kind         SignalKind
	Announcement *controlproxy.Announcement
}

// Status classifies the operational state a handler leaves the unit in.
type Status int

const (
	StatusActive Status = iota
	StatusMaintenance
	StatusBlocked
	StatusWaiting
)

// Outcome is the result of handling a signal. Deferred outcomes ask the
// hosting runtime to re-deliver the signal later; they are not errors.
type Outcome struct {
	Status   Status
	Message  string
	Deferred bool
}

// Agent handles lifecycle signals and operator actions for the access
// gateway, delegating all host mutation to its ports.
type Agent struct {
	cfg       config.GatewayConfig
	host      port.HostNetwork
	runner    port.CommandRunner
	installer *installer.Installer
	proxy     *controlproxy.Manager
	publisher port.CorePublisher
	prober    port.DHCPProber
}

// New creates an Agent over the given configuration snapshot and ports.
func New(
	cfg config.GatewayConfig,
	host port.HostNetwork,
	runner port.CommandRunner,
	files port.FileStore,
	publisher port.CorePublisher,
	prober port.DHCPProber,
) *Agent {
	return &Agent{
		cfg:       cfg,
		host:      host,
		runner:    runner,
		installer: installer.New(runner),
		proxy:     controlproxy.NewManager(files),
		publisher: publisher,
		prober:    prober,
	}
}

// Dispatch runs the handler for the given signal to completion on the
// calling context and returns its outcome.
func (a *Agent) Dispatch(ctx context.Context, sig Signal) Outcome {
	logging.WithSignal("agent", sig.Kind.String()).Debug("Dispatching signal")
	switch sig.Kind {
	case SignalInstall, SignalConfigChanged:
		return a.handleInstall(ctx)
	case SignalStart:
		return a.handleStart(ctx)
	case SignalOrchestratorAvailable:
		return a.handleOrchestratorAvailable(ctx, sig.Announcement)
	case SignalCoreRelationJoined:
		return a.handleCoreRelationJoined(ctx)
	}
	return Outcome{Status: StatusBlocked, Message: fmt.Sprintf("unknown signal %q", sig.Kind)}
}

// handleInstall installs the gateway snap, validates the configuration, runs
// the install script and schedules the reboot that applies the changes. It
// is a no-op when the gateway service is already enabled, which makes
// re-delivery of the signal idempotent.
func (a *Agent) handleInstall(ctx context.Context) Outcome {
	logger := logging.WithSignal("agent", "install")
	if a.installer.ServiceEnabled(ctx) {
		return Outcome{Status: StatusActive, Message: "Access gateway already installed"}
	}

	logger.Info("Installing AGW Snap")
	if err := a.installer.InstallSnap(ctx); err != nil {
		logger.WithError(err).Error("Snap installation failed")
		return Outcome{Status: StatusBlocked, Message: "Installation script failed. See logs for details"}
	}

	hostInterfaces, err := a.host.InterfaceNames()
	if err != nil {
		logger.WithError(err).Error("Failed to list host interfaces")
		return Outcome{Status: StatusBlocked, Message: "Configuration is invalid. Check logs for details"}
	}
	if !validate.Config(a.cfg, hostInterfaces) {
		return Outcome{Status: StatusBlocked, Message: "Configuration is invalid. Check logs for details"}
	}

	logger.Info("Installing AGW")
	code, err := a.installer.Install(ctx, a.cfg)
	if err != nil || code != 0 {
		if err != nil {
			logger.WithError(err).Error("Install script could not be run")
		}
		return Outcome{Status: StatusBlocked, Message: "Installation script failed. See logs for details"}
	}

	if err := a.installer.Reboot(ctx); err != nil {
		logger.WithError(err).Error("Failed to schedule reboot")
		return Outcome{Status: StatusBlocked, Message: "Installation script failed. See logs for details"}
	}
	return Outcome{Status: StatusMaintenance, Message: "Rebooting to apply changes"}
}

// handleStart reports the unit active once the gateway service is running;
// until then the signal is deferred for re-delivery.
func (a *Agent) handleStart(ctx context.Context) Outcome {
	if !a.installer.ServiceRunning(ctx) {
		return Outcome{
			Status:   StatusWaiting,
			Message:  "Waiting for the gateway service to start",
			Deferred: true,
		}
	}
	return Outcome{Status: StatusActive}
}

// handleOrchestratorAvailable installs the orchestrator-derived certificates
// and control proxy configuration, restarting the gateway when anything
// changed.
func (a *Agent) handleOrchestratorAvailable(ctx context.Context, announcement *controlproxy.Announcement) Outcome {
	logger := logging.WithSignal("agent", "orchestrator-available")
	if announcement == nil {
		return Outcome{Status: StatusBlocked, Message: "Orchestrator announcement is missing"}
	}

	changed, err := a.proxy.Apply(*announcement)
	if err != nil {
		logger.WithError(err).Error("Failed to install orchestrator configuration")
		return Outcome{Status: StatusBlocked, Message: "Failed to install orchestrator configuration. See logs for details"}
	}
	if changed {
		logger.Info("Restarting Access Gateway to apply changes")
		if err := a.installer.RestartService(ctx); err != nil {
			logger.WithError(err).Error("Failed to restart gateway service")
			return Outcome{Status: StatusBlocked, Message: "Failed to restart gateway service. See logs for details"}
		}
	}
	if !a.installer.ServiceRunning(ctx) {
		return Outcome{
			Status:   StatusWaiting,
			Message:  "Waiting for the gateway service to start",
			Deferred: true,
		}
	}
	return Outcome{Status: StatusActive}
}

// handleCoreRelationJoined publishes the MME interface address to the
// adjacent core service once the interface carries one.
func (a *Agent) handleCoreRelationJoined(ctx context.Context) Outcome {
	logger := logging.WithSignal("agent", "core-relation-joined")
	ip, err := a.host.InterfaceIPv4(mmeInterface)
	if err != nil {
		logger.WithError(err).Errorf("Failed to fetch IP address of %s interface", mmeInterface)
		return Outcome{
			Status:   StatusWaiting,
			Message:  "Waiting for the MME interface to be ready",
			Deferred: true,
		}
	}
	if err := a.publisher.PublishCoreAddress(ip); err != nil {
		logger.WithError(err).Error("Failed to publish core address")
		return Outcome{Status: StatusBlocked, Message: "Failed to publish core address. See logs for details"}
	}
	return Outcome{Status: StatusActive}
}

// GetSecrets fetches the gateway's bootstrap secrets. It requires the
// gateway service to be running and maps every underlying failure to a fixed
// operator-facing message.
func (a *Agent) GetSecrets(ctx context.Context) (secrets.Secrets, error) {
	if !a.installer.ServiceRunning(ctx) {
		return secrets.Secrets{}, errors.New("Magma is not running! Please start Magma and try again.")
	}
	result, err := secrets.Fetch(ctx, a.runner)
	if err != nil {
		logging.WithComponent("agent").WithError(err).Error("Secret extraction failed")
		return secrets.Secrets{}, errors.New("Failed to get Magma Access Gateway secrets!")
	}
	return result, nil
}

// PostInstallChecks runs the gateway's post-install checks and returns the
// fixed operator-facing message for the outcome.
func (a *Agent) PostInstallChecks(ctx context.Context) (string, error) {
	code, err := a.installer.PostInstallChecks(ctx)
	if err != nil {
		logging.WithComponent("agent").WithError(err).Error("Post-install checks could not be run")
		return "", errors.New("Failed to run post-install checks.")
	}
	if code != 0 {
		return "Post-installation checks failed. For more information, please check journalctl logs.", nil
	}
	return "Magma AGW post-installation checks finished successfully.", nil
}

// PreflightDHCP verifies that a DHCP server answers on the SGI interface.
// It only applies when the SGI interface is left in DHCP mode.
func (a *Agent) PreflightDHCP(ctx context.Context, timeout time.Duration) (string, error) {
	if !a.cfg.SGIUsesDHCP() {
		return "", errors.New("sgi interface is statically addressed; the DHCP preflight probe only applies to DHCP mode")
	}
	if a.cfg.SGI == "" {
		return "", errors.New("sgi interface name is required")
	}
	ip, err := a.prober.Probe(ctx, a.cfg.SGI, timeout)
	if err != nil {
		return "", fmt.Errorf("no DHCP offer received on %s: %w", a.cfg.SGI, err)
	}
	return fmt.Sprintf("DHCP server offered %s on %s", ip, a.cfg.SGI), nil
}
