package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubCheckModelShowsTargetWhileRunning(t *testing.T) {
	m := newHubCheckModel(context.Background(), "hub.example", "alice", func(context.Context) (hubStatus, error) {
		return hubStatus{}, nil
	})

	assert.Contains(t, m.View(), "Checking hub hub.example as alice...")
}

func TestHubCheckModelFetchReportsStatusAndLatency(t *testing.T) {
	m := newHubCheckModel(context.Background(), "hub.example", "alice", func(context.Context) (hubStatus, error) {
		time.Sleep(5 * time.Millisecond)
		return hubStatus{Ready: true, Message: "Hub is ready"}, nil
	})

	msg, ok := m.fetch().(hubCheckedMsg)
	require.True(t, ok)
	assert.True(t, msg.status.Ready)
	assert.GreaterOrEqual(t, msg.latency, 5*time.Millisecond)

	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	final := next.(hubCheckModel)
	assert.True(t, final.done)
	assert.Contains(t, final.View(), "ok hub answered in")
}

func TestHubCheckModelViewOnNotReadyAndError(t *testing.T) {
	m := newHubCheckModel(context.Background(), "hub.example", "alice", nil)

	next, _ := m.Update(hubCheckedMsg{status: hubStatus{Ready: false, Message: "maintenance"}, latency: time.Second})
	assert.Contains(t, next.View(), "but is not ready")

	next, _ = m.Update(hubCheckedMsg{err: errors.New("dial tcp: refused")})
	assert.Contains(t, next.View(), "hub hub.example as alice did not answer")
}
