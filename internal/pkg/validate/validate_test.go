//go:build unit

package validate

import (
	"testing"

	"agw-agent/internal/pkg/config"
	"agw-agent/internal/pkg/logging"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hostInterfaces = []string{"enp0s1", "enp0s2"}

// validConfig returns a minimal installable configuration.
func validConfig() config.GatewayConfig {
	return config.GatewayConfig{
		SGI: "enp0s1",
		S1:  "enp0s2",
		DNS: `["8.8.8.8","208.67.222.222"]`,
	}
}

// captureWarnings attaches a test hook to the global logger and returns the
// warning messages it captured.
func captureWarnings(t *testing.T, run func()) []string {
	t.Helper()
	hook := test.NewLocal(logging.GetLogger())
	defer hook.Reset()
	run()
	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	return messages
}

func TestConfig_SkipNetworking(t *testing.T) {
	t.Run("PassesRegardlessOfOtherFields", func(t *testing.T) {
		cfg := config.GatewayConfig{
			SkipNetworking: true,
			SGI:            "",
			S1:             "",
			SGIIPv4Address: "garbage",
			DNS:            "notjson",
		}
		assert.True(t, Config(cfg, nil))
	})
}

func TestConfig_InterfaceNames(t *testing.T) {
	t.Run("MissingNames", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGI = ""
		cfg.S1 = ""
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 2)
		assert.Equal(t, "sgi interface name is required", messages[0])
		assert.Equal(t, "s1 interface name is required", messages[1])
	})

	t.Run("InterfacesNotFound", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGI = "nosuchinterface"
		cfg.S1 = "bananaphone"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 2)
		assert.Equal(t, "nosuchinterface interface not found", messages[0])
		assert.Equal(t, "bananaphone interface not found", messages[1])
	})

	t.Run("RenamedTargetsAccepted", func(t *testing.T) {
		// The installer renames sgi to eth0 and s1 to eth1; a re-run after
		// the rename must still validate.
		cfg := validConfig()
		assert.True(t, Config(cfg, []string{"eth0", "eth1"}))
	})

	t.Run("PresentInterfacesAccepted", func(t *testing.T) {
		assert.True(t, Config(validConfig(), hostInterfaces))
	})
}

func TestConfig_SGIAddressing(t *testing.T) {
	t.Run("AllEmptyIsDHCPMode", func(t *testing.T) {
		assert.True(t, Config(validConfig(), hostInterfaces))
	})

	t.Run("AddressWithoutGateway", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv4Address = "10.0.0.2/24"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Both IPv4 address and gateway required for interface sgi", messages[0])
	})

	t.Run("GatewayWithoutAddress", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv4Gateway = "10.0.0.1"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Both IPv4 address and gateway required for interface sgi", messages[0])
	})

	t.Run("IPv6AddressWithoutGateway", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv4Address = "10.0.0.2/24"
		cfg.SGIIPv4Gateway = "10.0.0.1"
		cfg.SGIIPv6Address = "2001:0db8:85a3:0000:0000:8a2e:0370:7334/64"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Both IPv6 address and gateway required for interface sgi", messages[0])
	})

	t.Run("PureIPv6Unsupported", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv6Address = "2001:0db8:85a3:0000:0000:8a2e:0370:7334/64"
		cfg.SGIIPv6Gateway = "2001:0db8:85a3:0000:0000:8a2e:0370:7331"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Pure IPv6 configuration is not supported for interface sgi", messages[0])
	})

	t.Run("IPv4AddressWithoutPrefix", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv4Address = "10.0.0.2"
		cfg.SGIIPv4Gateway = "10.0.0.1"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Invalid IPv4 address and netmask for interface sgi", messages[0])
	})

	t.Run("IPv4HostOnlyPrefixRejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv4Address = "10.0.0.2/32"
		cfg.SGIIPv4Gateway = "10.0.0.1"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Invalid IPv4 address and netmask for interface sgi", messages[0])
	})

	t.Run("InvalidIPv4Gateway", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv4Address = "10.0.0.2/24"
		cfg.SGIIPv4Gateway = "not a gateway"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Invalid IPv4 gateway for interface sgi", messages[0])
	})

	t.Run("IPv6HostOnlyPrefixRejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv4Address = "10.0.0.2/24"
		cfg.SGIIPv4Gateway = "10.0.0.1"
		cfg.SGIIPv6Address = "2001:0db8:85a3:0000:0000:8a2e:0370:7334/128"
		cfg.SGIIPv6Gateway = "2001:0db8:85a3:0000:0000:8a2e:0370:7331"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Invalid IPv6 address and netmask for interface sgi", messages[0])
	})

	t.Run("InvalidIPv6Gateway", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv4Address = "10.0.0.2/24"
		cfg.SGIIPv4Gateway = "10.0.0.1"
		cfg.SGIIPv6Address = "2001:0db8:85a3:0000:0000:8a2e:0370:7334/64"
		cfg.SGIIPv6Gateway = "10.0.0.1"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Invalid IPv6 gateway for interface sgi", messages[0])
	})

	t.Run("ValidDualStack", func(t *testing.T) {
		cfg := validConfig()
		cfg.SGIIPv4Address = "10.0.0.2/24"
		cfg.SGIIPv4Gateway = "10.0.0.1"
		cfg.SGIIPv6Address = "2001:0db8:85a3:0000:0000:8a2e:0370:7334/64"
		cfg.SGIIPv6Gateway = "2001:0db8:85a3:0000:0000:8a2e:0370:7331"
		assert.True(t, Config(cfg, hostInterfaces))
	})
}

func TestConfig_S1Addressing(t *testing.T) {
	t.Run("PureIPv6Unsupported", func(t *testing.T) {
		cfg := validConfig()
		cfg.S1IPv6Address = "2001:0db8:85a3:0000:0000:8a2e:0370:7334/64"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Pure IPv6 configuration is not supported for interface s1", messages[0])
	})

	t.Run("InvalidIPv4Address", func(t *testing.T) {
		cfg := validConfig()
		cfg.S1IPv4Address = "invalidip"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Invalid IPv4 address and netmask for interface s1", messages[0])
	})

	t.Run("InvalidIPv6Address", func(t *testing.T) {
		cfg := validConfig()
		cfg.S1IPv4Address = "10.0.0.2/24"
		cfg.S1IPv6Address = "not ipv6"
		var valid bool
		messages := captureWarnings(t, func() {
			valid = Config(cfg, hostInterfaces)
		})
		assert.False(t, valid)
		require.Len(t, messages, 1)
		assert.Equal(t, "Invalid IPv6 address and netmask for interface s1", messages[0])
	})

	t.Run("ValidDualStack", func(t *testing.T) {
		cfg := validConfig()
		cfg.S1IPv4Address = "10.1.0.2/24"
		cfg.S1IPv6Address = "2002:0db8:85a3:0000:0000:8a2e:0370:7334/64"
		assert.True(t, Config(cfg, hostInterfaces))
	})
}

func TestConfig_DNS(t *testing.T) {
	for name, dns := range map[string]string{
		"NotJSON":  "notjson",
		"Object":   `{"a":"b"}`,
		"NotAnIP":  `["8.8.8.8","not-an-ip"]`,
		"Hostname": `["8.8.8.8", "dns1.example.com"]`,
	} {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			cfg.DNS = dns
			var valid bool
			messages := captureWarnings(t, func() {
				valid = Config(cfg, hostInterfaces)
			})
			assert.False(t, valid)
			require.Len(t, messages, 1)
			assert.Equal(t, "Invalid DNS configuration", messages[0])
		})
	}
}

func TestConfig_AccumulatesAllFailures(t *testing.T) {
	// Rules do not suppress each other: a broken interface name, a broken
	// addressing block and broken DNS all get reported in one pass.
	cfg := config.GatewayConfig{
		SGI:            "nosuchinterface",
		S1:             "enp0s2",
		S1IPv4Address:  "invalidip",
		SGIIPv4Address: "10.0.0.2/24",
		DNS:            "notjson",
	}
	var valid bool
	messages := captureWarnings(t, func() {
		valid = Config(cfg, hostInterfaces)
	})
	assert.False(t, valid)
	require.Len(t, messages, 4)
	assert.Equal(t, "nosuchinterface interface not found", messages[0])
	assert.Equal(t, "Both IPv4 address and gateway required for interface sgi", messages[1])
	assert.Equal(t, "Invalid IPv4 address and netmask for interface s1", messages[2])
	assert.Equal(t, "Invalid DNS configuration", messages[3])
}
