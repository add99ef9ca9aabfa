// Package validate decides whether a gateway configuration is installable.
package validate

import (
	"net"

	"agw-agent/internal/pkg/config"
	"agw-agent/internal/pkg/logging"
)

// The installer renames interfaces, so a configured name is also accepted
// when the renamed target is already present on the host.
const (
	renamedSGI = "eth0"
	renamedS1  = "eth1"
)

// Config validates a gateway configuration against the host's interface
// list. It does not short-circuit between rules: every violated rule emits
// exactly one warning so the operator sees all problems at once. The result
// is true only if every applicable rule passed.
func Config(cfg config.GatewayConfig, hostInterfaces []string) bool {
	if cfg.SkipNetworking {
		return true
	}
	valid := validInterface("sgi", cfg.SGI, renamedSGI, hostInterfaces)
	if !validInterface("s1", cfg.S1, renamedS1, hostInterfaces) {
		valid = false
	}
	if !validSGIAddressing(cfg) {
		valid = false
	}
	if !validS1Addressing(cfg) {
		valid = false
	}
	if _, err := cfg.DNSServers(); err != nil {
		logging.WithComponent("validate").WithError(err).Warn("Invalid DNS configuration")
		valid = false
	}
	return valid
}

// validInterface checks that an interface name is configured and that either
// the configured name or the renamed target is present on the host.
func validInterface(key, name, renamed string, hostInterfaces []string) bool {
	logger := logging.WithComponent("validate")
	if name == "" {
		logger.Warnf("%s interface name is required", key)
		return false
	}
	if !contains(hostInterfaces, name) && !contains(hostInterfaces, renamed) {
		logger.Warnf("%s interface not found", name)
		return false
	}
	return true
}

func validSGIAddressing(cfg config.GatewayConfig) bool {
	logger := logging.WithComponent("validate")
	ipv4Address := cfg.SGIIPv4Address
	ipv4Gateway := cfg.SGIIPv4Gateway
	ipv6Address := cfg.SGIIPv6Address
	ipv6Gateway := cfg.SGIIPv6Gateway
	if ipv4Address == "" && ipv4Gateway == "" && ipv6Address == "" && ipv6Gateway == "" {
		// DHCP mode
		return true
	}
	if (ipv4Address == "") != (ipv4Gateway == "") {
		logger.Warn("Both IPv4 address and gateway required for interface sgi")
		return false
	}
	if (ipv6Address == "") != (ipv6Gateway == "") {
		logger.Warn("Both IPv6 address and gateway required for interface sgi")
		return false
	}
	if ipv6Address != "" && ipv4Address == "" {
		logger.Warn("Pure IPv6 configuration is not supported for interface sgi")
		return false
	}
	if ipv4Address != "" && !validIPv4Network(ipv4Address) {
		logger.Warn("Invalid IPv4 address and netmask for interface sgi")
		return false
	}
	if ipv4Gateway != "" && !validIPv4Host(ipv4Gateway) {
		logger.Warn("Invalid IPv4 gateway for interface sgi")
		return false
	}
	if ipv6Address != "" && !validIPv6Network(ipv6Address) {
		logger.Warn("Invalid IPv6 address and netmask for interface sgi")
		return false
	}
	if ipv6Gateway != "" && !validIPv6Host(ipv6Gateway) {
		logger.Warn("Invalid IPv6 gateway for interface sgi")
		return false
	}
	return true
}

func validS1Addressing(cfg config.GatewayConfig) bool {
	logger := logging.WithComponent("validate")
	ipv4Address := cfg.S1IPv4Address
	ipv6Address := cfg.S1IPv6Address
	if ipv4Address == "" && ipv6Address == "" {
		return true
	}
	if ipv6Address != "" && ipv4Address == "" {
		logger.Warn("Pure IPv6 configuration is not supported for interface s1")
		return false
	}
	if ipv4Address != "" && !validIPv4Network(ipv4Address) {
		logger.Warn("Invalid IPv4 address and netmask for interface s1")
		return false
	}
	if ipv6Address != "" && !validIPv6Network(ipv6Address) {
		logger.Warn("Invalid IPv6 address and netmask for interface s1")
		return false
	}
	return true
}

// validIPv4Network accepts a.b.c.d/x with an explicit prefix shorter than a
// host-only /32.
func validIPv4Network(s string) bool {
	ip, network, err := net.ParseCIDR(s)
	if err != nil || ip.To4() == nil {
		return false
	}
	ones, _ := network.Mask.Size()
	return ones != 32
}

// validIPv4Host accepts a bare a.b.c.d address.
func validIPv4Host(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// validIPv6Network accepts an IPv6 address with an explicit prefix shorter
// than a host-only /128.
func validIPv6Network(s string) bool {
	ip, network, err := net.ParseCIDR(s)
	if err != nil || ip.To4() != nil || ip.To16() == nil {
		return false
	}
	ones, _ := network.Mask.Size()
	return ones != 128
}

// validIPv6Host accepts a bare IPv6 address.
func validIPv6Host(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil && ip.To16() != nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
