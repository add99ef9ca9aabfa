package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"

	"agw-agent/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// DefaultDNS is used when the gateway configuration does not name DNS servers.
const DefaultDNS = `["8.8.8.8", "208.67.222.222"]`

// GatewayConfig is an immutable snapshot of the gateway configuration. It is
// parsed once at the boundary; downstream code never re-interprets raw
// strings except for the JSON-encoded DNS list, which DNSServers decodes.
type GatewayConfig struct {
	SkipNetworking bool   `yaml:"skip-networking"`
	SGI            string `yaml:"sgi"`
	S1             string `yaml:"s1"`
	SGIIPv4Address string `yaml:"sgi-ipv4-address"`
	SGIIPv4Gateway string `yaml:"sgi-ipv4-gateway"`
	SGIIPv6Address string `yaml:"sgi-ipv6-address"`
	SGIIPv6Gateway string `yaml:"sgi-ipv6-gateway"`
	S1IPv4Address  string `yaml:"s1-ipv4-address"`
	S1IPv6Address  string `yaml:"s1-ipv6-address"`
	DNS            string `yaml:"dns"` // JSON-encoded list of IP addresses
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Gateway GatewayConfig     `yaml:"gateway"`
}

// Load loads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if config.Gateway.DNS == "" {
		config.Gateway.DNS = DefaultDNS
	}

	return &config, nil
}

// DNSServers decodes the JSON-encoded DNS list. It fails if the value is not
// a JSON list of strings, if the list is empty, or if any element is not an
// IP address.
func (g GatewayConfig) DNSServers() ([]string, error) {
	var servers []string
	if err := json.Unmarshal([]byte(g.DNS), &servers); err != nil {
		return nil, fmt.Errorf("dns is not a JSON list: %w", err)
	}
	if len(servers) == 0 {
		return nil, fmt.Errorf("dns list is empty")
	}
	for _, server := range servers {
		if net.ParseIP(server) == nil {
			return nil, fmt.Errorf("dns entry %q is not an IP address", server)
		}
	}
	return servers, nil
}

// SGIUsesDHCP reports whether the SGI interface is left to DHCP, which is the
// case when none of its static addressing fields are set.
func (g GatewayConfig) SGIUsesDHCP() bool {
	return g.SGIIPv4Address == "" && g.SGIIPv4Gateway == "" &&
		g.SGIIPv6Address == "" && g.SGIIPv6Gateway == ""
}
