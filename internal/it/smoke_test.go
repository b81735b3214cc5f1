package it

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garrison/internal/agreement"
	"garrison/internal/config"
	"garrison/internal/mutex"
)

func TestSmoke_MutexHandoff(t *testing.T) {
	cluster, err := StartCluster(Options{
		Total:    3,
		Protocol: config.ProtocolMutex,
	})
	require.NoError(t, err)
	defer cluster.Stop()

	ctx := context.Background()
	a := cluster.Node(0).Coordinator()
	b := cluster.Node(1).Coordinator()

	// A acquires the section over the real wire.
	require.NoError(t, a.RequestCS(ctx))
	require.Equal(t, mutex.StateHeld, a.State())

	bEntered := make(chan error, 1)
	go func() { bEntered <- b.RequestCS(ctx) }()

	// B contends but must keep waiting while A holds the section.
	require.Eventually(t, func() bool {
		return b.State() == mutex.StateWanted
	}, 5*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.NotEqual(t, mutex.StateHeld, b.State(), "B entered while A held the section")

	require.NoError(t, a.ReleaseCS(ctx))

	require.NoError(t, <-bEntered)
	assert.Equal(t, mutex.StateHeld, b.State())
	require.NoError(t, b.ReleaseCS(ctx))
}

func TestSmoke_ByzantineAgreement(t *testing.T) {
	cluster, err := StartCluster(Options{
		Total:      4,
		Protocol:   config.ProtocolByzantine,
		FaultBound: 1,
		Commander:  0,
		Traitors:   map[int]bool{3: true},
	})
	require.NoError(t, err)
	defer cluster.Stop()

	commander := cluster.Node(0).Agreement()
	require.NoError(t, commander.InitiateCommand(context.Background(), agreement.Attack))

	// Relays settle asynchronously; both loyal lieutenants must end up
	// carrying the commander's order.
	require.Eventually(t, func() bool {
		for _, id := range []int{1, 2} {
			decision, err := cluster.Node(id).Agreement().Decide()
			if err != nil || decision != agreement.Attack {
				return false
			}
		}
		return true
	}, 10*time.Second, 20*time.Millisecond)
}

func TestSmoke_FaultBoundRejectedBeforeServing(t *testing.T) {
	_, err := StartCluster(Options{
		Total:      3,
		Protocol:   config.ProtocolByzantine,
		FaultBound: 1,
		Commander:  0,
	})
	require.Error(t, err)
}
