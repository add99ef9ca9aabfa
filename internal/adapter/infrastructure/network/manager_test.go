//go:build unit

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerAdapter_InterfaceNames(t *testing.T) {
	adapter := NewManagerAdapter()

	names, err := adapter.InterfaceNames()
	if err != nil {
		t.Skip("Netlink not available, skipping test")
	}
	require.NotEmpty(t, names)
	// Loopback exists on any Linux host this runs on
	assert.Contains(t, names, "lo")
}

func TestManagerAdapter_InterfaceIPv4(t *testing.T) {
	adapter := NewManagerAdapter()

	t.Run("LoopbackAddress", func(t *testing.T) {
		ip, err := adapter.InterfaceIPv4("lo")
		if err != nil {
			t.Skip("Loopback has no IPv4 address, skipping test")
		}
		assert.Equal(t, "127.0.0.1", ip.String())
	})

	t.Run("NonExistentInterface", func(t *testing.T) {
		_, err := adapter.InterfaceIPv4("nonexistent")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get netlink interface")
	})
}
