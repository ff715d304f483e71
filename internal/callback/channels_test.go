package callback

import (
	"testing"
	"time"

	"github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func instanceAt(host string, port int) []*api.ServiceEntry {
	return []*api.ServiceEntry{{
		Service: &api.AgentService{Address: host, Port: port},
	}}
}

func newTestManager(t *testing.T, capacity int) *ChannelManager {
	t.Helper()
	m := NewChannelManager(15*time.Minute, capacity, 1<<20, zap.NewNop())
	t.Cleanup(m.Shutdown)
	return m
}

func TestGetChannelNoInstances(t *testing.T) {
	m := newTestManager(t, 10)

	_, err := m.GetChannel("pdf-extract", nil)
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())
	assert.Equal(t, "No instances found for service pdf-extract", st.Message())
}

func TestGetChannelCachesPerServiceName(t *testing.T) {
	m := newTestManager(t, 10)

	first, err := m.GetChannel("pdf-extract", instanceAt("127.0.0.1", 50051))
	require.NoError(t, err)
	// A second lookup reuses the channel even when discovery now reports a
	// different instance.
	second, err := m.GetChannel("pdf-extract", instanceAt("127.0.0.1", 50099))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, m.ActiveChannelCount())

	other, err := m.GetChannel("auth-svc", instanceAt("127.0.0.1", 7000))
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, m.ActiveChannelCount())
}

func TestGetChannelAfterShutdown(t *testing.T) {
	m := NewChannelManager(15*time.Minute, 10, 1<<20, zap.NewNop())
	m.Shutdown()

	_, err := m.GetChannel("pdf-extract", instanceAt("127.0.0.1", 50051))
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())
	assert.Equal(t, "Channel manager is shutting down", st.Message())
}

func TestGetChannelCapacityEvictsOldest(t *testing.T) {
	m := newTestManager(t, 2)

	_, err := m.GetChannel("a", instanceAt("127.0.0.1", 1001))
	require.NoError(t, err)
	_, err = m.GetChannel("b", instanceAt("127.0.0.1", 1002))
	require.NoError(t, err)

	// Touch a so b becomes the least recently used entry.
	_, err = m.GetChannel("a", nil)
	require.Error(t, err, "cached entries are not returned for empty instance lists")
	_, err = m.GetChannel("a", instanceAt("127.0.0.1", 1001))
	require.NoError(t, err)

	_, err = m.GetChannel("c", instanceAt("127.0.0.1", 1003))
	require.NoError(t, err)

	assert.Equal(t, 2, m.ActiveChannelCount())
	m.mu.Lock()
	_, hasA := m.channels["a"]
	_, hasB := m.channels["b"]
	_, hasC := m.channels["c"]
	m.mu.Unlock()
	assert.True(t, hasA)
	assert.False(t, hasB, "least recently used entry is evicted at capacity")
	assert.True(t, hasC)
}

func TestEvictIdle(t *testing.T) {
	m := newTestManager(t, 10)

	_, err := m.GetChannel("pdf-extract", instanceAt("127.0.0.1", 50051))
	require.NoError(t, err)

	m.evictIdle(time.Now())
	assert.Equal(t, 1, m.ActiveChannelCount(), "fresh channels survive the sweep")

	m.evictIdle(time.Now().Add(16 * time.Minute))
	assert.Equal(t, 0, m.ActiveChannelCount())
}

func TestEvictChannel(t *testing.T) {
	m := newTestManager(t, 10)

	_, err := m.GetChannel("pdf-extract", instanceAt("127.0.0.1", 50051))
	require.NoError(t, err)

	m.EvictChannel("pdf-extract")
	assert.Equal(t, 0, m.ActiveChannelCount())

	// Evicting an absent entry is a no-op.
	m.EvictChannel("pdf-extract")
}

func TestDialTargetPrefersRecordAddress(t *testing.T) {
	entry := &api.ServiceEntry{Service: &api.AgentService{
		Address: "pdf-extract.internal",
		Port:    50052,
		Meta:    map[string]string{"advertised-host": "10.0.0.5"},
	}}
	assert.Equal(t, "pdf-extract.internal:50052", dialTarget(entry))

	entry.Service.Address = ""
	assert.Equal(t, "10.0.0.5:50052", dialTarget(entry))
}
