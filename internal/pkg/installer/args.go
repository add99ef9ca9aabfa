package installer

import (
	"agw-agent/internal/pkg/config"
)

// networkArguments lists the installer flags derived from the gateway
// configuration, in their fixed declaration order. The order is what makes
// BuildArguments deterministic and reproducible.
var networkArguments = []struct {
	key   string
	value func(config.GatewayConfig) string
}{
	{"sgi", func(c config.GatewayConfig) string { return c.SGI }},
	{"s1", func(c config.GatewayConfig) string { return c.S1 }},
	{"sgi-ipv4-address", func(c config.GatewayConfig) string { return c.SGIIPv4Address }},
	{"sgi-ipv4-gateway", func(c config.GatewayConfig) string { return c.SGIIPv4Gateway }},
	{"sgi-ipv6-address", func(c config.GatewayConfig) string { return c.SGIIPv6Address }},
	{"sgi-ipv6-gateway", func(c config.GatewayConfig) string { return c.SGIIPv6Gateway }},
	{"s1-ipv4-address", func(c config.GatewayConfig) string { return c.S1IPv4Address }},
	{"s1-ipv6-address", func(c config.GatewayConfig) string { return c.S1IPv6Address }},
}

// BuildArguments derives the install script's argument list from the gateway
// configuration. It must only be called after validation has passed; with a
// validated configuration the DNS list always decodes.
func BuildArguments(cfg config.GatewayConfig) []string {
	if cfg.SkipNetworking {
		return []string{"--no-reboot", "--skip-networking"}
	}
	arguments := []string{"--no-reboot", "--dns"}
	servers, _ := cfg.DNSServers()
	arguments = append(arguments, servers...)
	for _, arg := range networkArguments {
		if value := arg.value(cfg); value != "" {
			arguments = append(arguments, "--"+arg.key, value)
		}
	}
	return arguments
}
