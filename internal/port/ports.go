// Package port defines the primary ports (interfaces) for the agent.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=ports.go -destination=../mock/ports.go -package=mock

import (
	"context"
	"net"
	"os"
	"time"
)

// HostNetwork is a port for host network-interface inventory operations.
type HostNetwork interface {
	// InterfaceNames returns the names of all interfaces present on the host
	InterfaceNames() ([]string, error)

	// InterfaceIPv4 returns the first IPv4 address configured on the named interface
	InterfaceIPv4(name string) (net.IP, error)
}

// CommandRunner is a port for external process execution.
// Run returns the process exit code and captured combined output. A non-zero
// exit code is not an error; err is non-nil only when the process could not
// be started or was interrupted.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (int, []byte, error)
}

// FileStore is a port for file system operations.
type FileStore interface {
	// ReadFile reads the contents of a file
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to a file with the specified permissions
	WriteFile(name string, data []byte, perm os.FileMode) error

	// FileExists checks if a file exists
	FileExists(name string) bool

	// Remove deletes a file; removing a missing file is not an error
	Remove(name string) error

	// MkdirAll creates a directory and any missing parents
	MkdirAll(path string, perm os.FileMode) error
}

// DHCPProber is a port for verifying DHCP service on an interface.
type DHCPProber interface {
	// Probe solicits a DHCP offer on the named interface and returns the
	// offered address without committing a lease
	Probe(ctx context.Context, interfaceName string, timeout time.Duration) (net.IP, error)
}

// CorePublisher is a port for announcing the gateway's core-facing address
// to an adjacent service.
type CorePublisher interface {
	PublishCoreAddress(ip net.IP) error
}

// CorePublisherFunc adapts a function to the CorePublisher port.
type CorePublisherFunc func(ip net.IP) error

// PublishCoreAddress calls f(ip).
func (f CorePublisherFunc) PublishCoreAddress(ip net.IP) error {
	return f(ip)
}
