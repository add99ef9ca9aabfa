// Package controlproxy derives the gateway's control proxy configuration and
// certificate files from an orchestrator announcement.
package controlproxy

import (
	"fmt"
	"path/filepath"

	"agw-agent/internal/pkg/logging"
	"agw-agent/internal/port"
)

const (
	// RootCACertPath is where the orchestrator's root CA certificate is
	// installed. The rendered configuration references this path.
	RootCACertPath = "/var/opt/magma/tmp/certs/rootCA.pem"

	// CertifierCertPath is where the orchestrator's certifier certificate
	// is installed.
	CertifierCertPath = "/var/opt/magma/tmp/certs/certifier.pem"

	// ConfigPath is where the rendered control proxy configuration is
	// installed.
	ConfigPath = "/var/opt/magma/configs/control_proxy.yml"
)

// staleCredentialFiles are gateway credentials derived from the certifier
// certificate. They must be removed when the certifier changes so the
// gateway re-registers with fresh credentials.
var staleCredentialFiles = []string{
	"/var/opt/magma/gateway.crt",
	"/var/opt/magma/gateway.key",
	"/var/opt/magma/gw_challenge.key",
}

// Announcement carries the endpoints and certificates the orchestrator
// publishes when it becomes available.
type Announcement struct {
	OrchestratorAddress  string `yaml:"orchestrator-address"`
	OrchestratorPort     int    `yaml:"orchestrator-port"`
	BootstrapperAddress  string `yaml:"bootstrapper-address"`
	BootstrapperPort     int    `yaml:"bootstrapper-port"`
	FluentdAddress       string `yaml:"fluentd-address"`
	FluentdPort          int    `yaml:"fluentd-port"`
	RootCACertificate    string `yaml:"root-ca-certificate"`
	CertifierCertificate string `yaml:"certifier-certificate"`
}

// Render produces the control proxy configuration text. Key ordering and the
// blank-line separator are fixed regardless of the input values.
func Render(a Announcement) string {
	return fmt.Sprintf(
		"cloud_address: %s\n"+
			"cloud_port: %d\n"+
			"bootstrap_address: %s\n"+
			"bootstrap_port: %d\n"+
			"fluentd_address: %s\n"+
			"fluentd_port: %d\n"+
			"\n"+
			"rootca_cert: %s\n",
		a.OrchestratorAddress,
		a.OrchestratorPort,
		a.BootstrapperAddress,
		a.BootstrapperPort,
		a.FluentdAddress,
		a.FluentdPort,
		RootCACertPath,
	)
}

// Manager installs orchestrator-derived files through the FileStore port.
type Manager struct {
	files port.FileStore
}

// NewManager creates a Manager backed by the given file store.
func NewManager(files port.FileStore) *Manager {
	return &Manager{files: files}
}

// Apply installs the root CA certificate, the certifier certificate and the
// rendered configuration, each written only when its content differs from
// what is already on disk. A changed certifier certificate first triggers
// removal of the stale derived credential files. Apply reports whether any
// file was written.
func (m *Manager) Apply(a Announcement) (bool, error) {
	if m.certifierChanged(a.CertifierCertificate) {
		m.removeStaleCredentials()
	}

	changed := false
	installs := []struct {
		path    string
		content string
	}{
		{RootCACertPath, a.RootCACertificate},
		{CertifierCertPath, a.CertifierCertificate},
		{ConfigPath, Render(a)},
	}
	for _, install := range installs {
		wrote, err := m.InstallFile(install.path, install.content)
		if err != nil {
			return changed, err
		}
		if wrote {
			changed = true
		}
	}
	return changed, nil
}

// InstallFile writes content to path unless the file already holds exactly
// that content. It reports whether the file was written.
func (m *Manager) InstallFile(path, content string) (bool, error) {
	if m.files.FileExists(path) {
		existing, err := m.files.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if string(existing) == content {
			return false, nil
		}
	}
	if err := m.files.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := m.files.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

func (m *Manager) certifierChanged(newCert string) bool {
	if !m.files.FileExists(CertifierCertPath) {
		return false
	}
	existing, err := m.files.ReadFile(CertifierCertPath)
	if err != nil {
		return false
	}
	return string(existing) != newCert
}

func (m *Manager) removeStaleCredentials() {
	logger := logging.WithComponent("controlproxy")
	for _, file := range staleCredentialFiles {
		if err := m.files.Remove(file); err != nil {
			logger.WithError(err).WithField("file", file).Warn("Failed to remove stale credential file")
		} else {
			logger.WithField("file", file).Debug("Removed stale credential file")
		}
	}
}
