//go:build unit

package dhcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProberAdapter_Probe(t *testing.T) {
	// Probing needs a real interface and a DHCP server; a unit test can only
	// exercise the failure path for a missing interface.
	adapter := NewProberAdapter()

	_, err := adapter.Probe(context.Background(), "nonexistent", time.Second)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create DHCP client")
}
