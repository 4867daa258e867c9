package session_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashtagbbq/tableside/internal/kv"
	"github.com/hashtagbbq/tableside/internal/session"
)

func TestFlowRoundTrip(t *testing.T) {
	ctx := t.Context()
	manager := session.NewManager(kv.NewMemory())

	// Nothing selected yet.
	flow, err := manager.Flow(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Flow{}, flow)

	want := session.Flow{OrderType: "dine-in", OutletID: "1", Mode: "now"}
	require.NoError(t, manager.SetFlow(ctx, want))

	flow, err = manager.Flow(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, flow)
}

func TestIDIsStable(t *testing.T) {
	ctx := t.Context()
	manager := session.NewManager(kv.NewMemory())

	first, err := manager.ID(ctx)
	require.NoError(t, err)

	_, err = uuid.Parse(first)
	require.NoError(t, err)

	second, err := manager.ID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
