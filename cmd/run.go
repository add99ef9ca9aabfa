package cmd

import (
	"fmt"
	"net"
	"os"

	"agw-agent/internal/agent"
	"agw-agent/internal/adapter/infrastructure/dhcp"
	"agw-agent/internal/adapter/infrastructure/exec"
	"agw-agent/internal/adapter/infrastructure/file"
	"agw-agent/internal/adapter/infrastructure/network"
	"agw-agent/internal/pkg/config"
	"agw-agent/internal/pkg/controlproxy"
	"agw-agent/internal/pkg/logging"
	"agw-agent/internal/port"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFlag       string
	signalFlag       string
	announcementFlag string
)

// parseSignal maps a signal name to its kind.
func parseSignal(name string) (agent.SignalKind, error) {
	signals := map[string]agent.SignalKind{
		"install":                agent.SignalInstall,
		"start":                  agent.SignalStart,
		"config-changed":         agent.SignalConfigChanged,
		"orchestrator-available": agent.SignalOrchestratorAvailable,
		"core-relation-joined":   agent.SignalCoreRelationJoined,
	}
	kind, ok := signals[name]
	if !ok {
		return 0, fmt.Errorf("unknown signal %q", name)
	}
	return kind, nil
}

// loadAnnouncement reads an orchestrator announcement from a YAML file.
func loadAnnouncement(path string) (*controlproxy.Announcement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read announcement file %s: %w", path, err)
	}
	var announcement controlproxy.Announcement
	if err := yaml.Unmarshal(data, &announcement); err != nil {
		return nil, fmt.Errorf("failed to parse announcement file %s: %w", path, err)
	}
	return &announcement, nil
}

// newAgent wires the agent to its host adapters.
func newAgent(cfg *config.Config) *agent.Agent {
	logger := logging.GetLogger()
	publisher := port.CorePublisherFunc(func(ip net.IP) error {
		logger.WithField("address", ip.String()).Info("Publishing core address")
		fmt.Println(ip.String())
		return nil
	})
	return agent.New(
		cfg.Gateway,
		network.NewManagerAdapter(),
		exec.NewRunnerAdapter(),
		file.NewManagerAdapter(),
		publisher,
		dhcp.NewProberAdapter(),
	)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Dispatch a lifecycle signal to the gateway agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		logging.InitLogger(cfg.Logging)

		kind, err := parseSignal(signalFlag)
		if err != nil {
			return err
		}

		sig := agent.Signal{Kind: kind}
		if kind == agent.SignalOrchestratorAvailable {
			if announcementFlag == "" {
				return fmt.Errorf("--announcement is required for the orchestrator-available signal")
			}
			announcement, err := loadAnnouncement(announcementFlag)
			if err != nil {
				return err
			}
			sig.Announcement = announcement
		}

		outcome := newAgent(cfg).Dispatch(cmd.Context(), sig)
		logger := logging.WithSignal("cmd", kind.String())
		switch {
		case outcome.Deferred:
			logger.WithField("message", outcome.Message).Info("Signal deferred, retry later")
			return nil
		case outcome.Status == agent.StatusBlocked:
			return fmt.Errorf("blocked: %s", outcome.Message)
		default:
			if outcome.Message != "" {
				logger.Info(outcome.Message)
			}
			return nil
		}
	},
}

func init() {
	runCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	runCmd.Flags().StringVarP(&signalFlag, "signal", "s", "", "Lifecycle signal to dispatch")
	runCmd.Flags().StringVarP(&announcementFlag, "announcement", "a", "", "Path to orchestrator announcement file (YAML)")
	if err := runCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	if err := runCmd.MarkFlagRequired("signal"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(runCmd)
}
