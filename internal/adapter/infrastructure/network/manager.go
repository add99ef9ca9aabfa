// Package network provides the host network inventory adapter.
package network

import (
	"fmt"
	"net"

	"agw-agent/internal/port"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the HostNetwork port using the
// vishvananda/netlink library.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the HostNetwork port
var _ port.HostNetwork = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new host network adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// InterfaceNames returns the names of all links present on the host.
func (n *ManagerAdapter) InterfaceNames() ([]string, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list host interfaces: %w", err)
	}
	names := make([]string, 0, len(links))
	for _, link := range links {
		names = append(names, link.Attrs().Name)
	}
	return names, nil
}

// InterfaceIPv4 returns the first IPv4 address configured on the named
// interface.
func (n *ManagerAdapter) InterfaceIPv4(name string) (net.IP, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", name, err)
	}
	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses on %s: %w", name, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("interface %s has no IPv4 address", name)
	}
	return addrs[0].IPNet.IP, nil
}
