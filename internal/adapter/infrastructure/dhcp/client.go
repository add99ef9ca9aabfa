// Package dhcp provides the DHCP probe adapter implementation.
package dhcp

import (
	"context"
	"fmt"
	"net"
	"time"

	"agw-agent/internal/port"

	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
)

// ProberAdapter is an adapter that implements the DHCPProber port using the
// insomniacslk/dhcp library.
type ProberAdapter struct{}

// Ensure ProberAdapter implements the DHCPProber port
var _ port.DHCPProber = (*ProberAdapter)(nil)

// NewProberAdapter creates a new DHCP prober adapter.
func NewProberAdapter() *ProberAdapter {
	return &ProberAdapter{}
}

// Probe performs a DHCP DISCOVER on the named interface and returns the
// offered address. The offer is not requested, so no lease is committed.
func (p *ProberAdapter) Probe(ctx context.Context, interfaceName string, timeout time.Duration) (net.IP, error) {
	client, err := nclient4.New(interfaceName, nclient4.WithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create DHCP client on %s: %w", interfaceName, err)
	}
	defer client.Close()

	offer, err := client.DiscoverOffer(ctx)
	if err != nil {
		return nil, fmt.Errorf("DHCP discover failed on %s: %w", interfaceName, err)
	}
	return offer.YourIPAddr, nil
}
