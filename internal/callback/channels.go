// Package callback talks back to registered modules over gRPC. After a
// module passes its health gate the registration pipeline calls the module's
// GetServiceRegistration RPC to pull version, display metadata, dependencies
// and the JSON config schema. Channels are cached per logical service name
// so endpoint rotation inside the discovery store does not churn connections.
package callback

import (
	"math"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/consul/api"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/pipestream-ai/platform-registry/internal/metrics"
)

const (
	// maxMessageSize lifts the gRPC message cap for large schema payloads.
	maxMessageSize = math.MaxInt32
	// shutdownBudget bounds how long teardown waits for channels to close.
	shutdownBudget = 2 * time.Second

	sweepInterval = time.Minute
)

type managedChannel struct {
	conn     *grpc.ClientConn
	lastUsed time.Time
}

// ChannelManager caches gRPC client connections keyed by logical service
// name with idle-TTL and capacity eviction. The eviction paths are the only
// closers of a cached connection.
type ChannelManager struct {
	mu           sync.Mutex
	channels     map[string]*managedChannel
	shuttingDown bool

	ttl      time.Duration
	capacity int
	window   int32
	log      *zap.Logger

	stop     chan struct{}
	stopOnce sync.Once
}

// NewChannelManager builds a manager evicting channels idle longer than ttl
// and capping the cache at capacity entries. The window tunes the HTTP/2
// initial flow-control size on new connections; the stock 64 KiB window
// throttles the large schema messages modules return.
func NewChannelManager(ttl time.Duration, capacity int, window int32, log *zap.Logger) *ChannelManager {
	m := &ChannelManager{
		channels: make(map[string]*managedChannel),
		ttl:      ttl,
		capacity: capacity,
		window:   window,
		log:      log,
		stop:     make(chan struct{}),
	}
	go m.sweep()
	log.Info("Channel manager initialized",
		zap.Duration("idle_ttl", ttl),
		zap.Int("capacity", capacity),
		zap.Int32("flow_control_window", window))
	return m
}

// GetChannel returns the cached connection for a service, dialing the first
// discovered instance when none is cached yet. Returns Unavailable when no
// instances were supplied or when the manager is shutting down.
func (m *ChannelManager) GetChannel(serviceName string, instances []*api.ServiceEntry) (*grpc.ClientConn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(instances) == 0 {
		return nil, status.Errorf(codes.Unavailable, "No instances found for service %s", serviceName)
	}
	if m.shuttingDown {
		return nil, status.Error(codes.Unavailable, "Channel manager is shutting down")
	}
	if entry, ok := m.channels[serviceName]; ok {
		entry.lastUsed = time.Now()
		return entry.conn, nil
	}

	target := dialTarget(instances[0])
	m.log.Info("Opening gRPC channel",
		zap.String("service", serviceName), zap.String("target", target))

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithInitialWindowSize(m.window),
		grpc.WithInitialConnWindowSize(m.window),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMessageSize),
			grpc.MaxCallSendMsgSize(maxMessageSize),
		),
	)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "Failed to open channel to %s: %v", serviceName, err)
	}

	if len(m.channels) >= m.capacity {
		m.evictOldestLocked()
	}
	m.channels[serviceName] = &managedChannel{conn: conn, lastUsed: time.Now()}
	metrics.CallbackChannelsOpen.Inc()
	return conn, nil
}

// EvictChannel drops and closes the cached channel for a service, if any.
func (m *ChannelManager) EvictChannel(serviceName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry, ok := m.channels[serviceName]; ok {
		m.closeLocked(serviceName, entry, "manual eviction")
	}
}

// ActiveChannelCount reports the number of cached channels.
func (m *ChannelManager) ActiveChannelCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.channels)
}

// Shutdown flips the shutting-down flag, stops the sweeper and closes every
// cached channel within a bounded budget. Channels still open when the
// budget expires are abandoned to process exit.
func (m *ChannelManager) Shutdown() {
	m.mu.Lock()
	if m.shuttingDown {
		m.mu.Unlock()
		return
	}
	m.shuttingDown = true
	channels := m.channels
	m.channels = make(map[string]*managedChannel)
	m.mu.Unlock()

	metrics.CallbackChannelsOpen.Sub(float64(len(channels)))
	m.stopOnce.Do(func() { close(m.stop) })

	m.log.Info("Shutting down cached gRPC channels", zap.Int("count", len(channels)))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for name, entry := range channels {
			if err := entry.conn.Close(); err != nil {
				m.log.Debug("Error closing channel",
					zap.String("service", name), zap.Error(err))
			}
		}
	}()
	select {
	case <-done:
		m.log.Info("Channel manager shutdown complete")
	case <-time.After(shutdownBudget):
		m.log.Warn("Channel shutdown timed out, abandoning remaining channels")
	}
}

func (m *ChannelManager) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.evictIdle(time.Now())
		}
	}
}

func (m *ChannelManager) evictIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, entry := range m.channels {
		if now.Sub(entry.lastUsed) > m.ttl {
			m.closeLocked(name, entry, "idle TTL expired")
		}
	}
}

// evictOldestLocked frees one slot by closing the least recently used entry.
func (m *ChannelManager) evictOldestLocked() {
	var oldestName string
	var oldest *managedChannel
	for name, entry := range m.channels {
		if oldest == nil || entry.lastUsed.Before(oldest.lastUsed) {
			oldestName, oldest = name, entry
		}
	}
	if oldest != nil {
		m.closeLocked(oldestName, oldest, "capacity reached")
	}
}

func (m *ChannelManager) closeLocked(serviceName string, entry *managedChannel, reason string) {
	m.log.Info("Evicting gRPC channel",
		zap.String("service", serviceName), zap.String("reason", reason))
	if err := entry.conn.Close(); err != nil {
		m.log.Debug("Error closing channel",
			zap.String("service", serviceName), zap.Error(err))
	}
	delete(m.channels, serviceName)
	metrics.CallbackChannelsOpen.Dec()
}

// dialTarget picks the address a module registered for platform traffic,
// falling back to the advertised host when the record address is blank.
func dialTarget(entry *api.ServiceEntry) string {
	host := entry.Service.Address
	if host == "" {
		host = entry.Service.Meta["advertised-host"]
	}
	return net.JoinHostPort(host, strconv.Itoa(entry.Service.Port))
}
