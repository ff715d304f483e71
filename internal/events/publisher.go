// Package events emits registration lifecycle events to Kafka for
// downstream indexing. Emission is fire-and-forget: a broker outage must
// never fail or roll back the registration that triggered the event.
package events

import (
	"context"
	"crypto/md5"
	"sync"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
)

const (
	publishTimeout = 10 * time.Second
	drainTimeout   = 5 * time.Second
)

// Topics names the destination topic per event kind.
type Topics struct {
	ServiceRegistered   string
	ServiceUnregistered string
	ModuleRegistered    string
	ModuleUnregistered  string
}

// messageWriter is the slice of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes protobuf-encoded lifecycle events, one topic per kind,
// keyed by a UUID derived from the service id so every event for an
// instance lands on the same partition.
type Publisher struct {
	topics    Topics
	log       *zap.Logger
	newWriter func(topic string) messageWriter

	mu      sync.Mutex
	writers map[string]messageWriter
	wg      sync.WaitGroup
}

// NewPublisher builds a publisher with lazily created per-topic writers.
func NewPublisher(brokers []string, topics Topics, log *zap.Logger) *Publisher {
	return &Publisher{
		topics: topics,
		log:    log,
		newWriter: func(topic string) messageWriter {
			return &kafka.Writer{
				Addr:  kafka.TCP(brokers...),
				Topic: topic,
				// Murmur2 keeps key-to-partition placement compatible with
				// producers using the Java client.
				Balancer:     kafka.Murmur2Balancer{},
				RequiredAcks: kafka.RequireAll,
				Compression:  kafka.Snappy,
				Async:        false,
			}
		},
		writers: make(map[string]messageWriter),
	}
}

// EmitServiceRegistered publishes a ServiceRegistered event.
func (p *Publisher) EmitServiceRegistered(serviceID, serviceName, host string, port int32, version string) {
	event := &registrationv1.ServiceRegistered{
		ServiceId:   serviceID,
		ServiceName: serviceName,
		Host:        host,
		Port:        port,
		Version:     version,
		Timestamp:   timestamppb.Now(),
	}
	p.publish(p.topics.ServiceRegistered, serviceID, "ServiceRegistered", event)
}

// EmitServiceUnregistered publishes a ServiceUnregistered event.
func (p *Publisher) EmitServiceUnregistered(serviceID, serviceName string) {
	event := &registrationv1.ServiceUnregistered{
		ServiceId:   serviceID,
		ServiceName: serviceName,
		Timestamp:   timestamppb.Now(),
	}
	p.publish(p.topics.ServiceUnregistered, serviceID, "ServiceUnregistered", event)
}

// EmitModuleRegistered publishes a ModuleRegistered event.
func (p *Publisher) EmitModuleRegistered(serviceID, moduleName, host string, port int32, version, schemaID, artifactID string) {
	event := &registrationv1.ModuleRegistered{
		ServiceId:          serviceID,
		ModuleName:         moduleName,
		Host:               host,
		Port:               port,
		Version:            version,
		SchemaId:           schemaID,
		ApicurioArtifactId: artifactID,
		Timestamp:          timestamppb.Now(),
	}
	p.publish(p.topics.ModuleRegistered, serviceID, "ModuleRegistered", event)
}

// EmitModuleUnregistered publishes a ModuleUnregistered event.
func (p *Publisher) EmitModuleUnregistered(serviceID, moduleName string) {
	event := &registrationv1.ModuleUnregistered{
		ServiceId:  serviceID,
		ModuleName: moduleName,
		Timestamp:  timestamppb.Now(),
	}
	p.publish(p.topics.ModuleUnregistered, serviceID, "ModuleUnregistered", event)
}

// Close drains in-flight publishes within a bounded budget, then closes all
// writers.
func (p *Publisher) Close() error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(drainTimeout):
		p.log.Warn("Timed out waiting for in-flight event publishes")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}

func (p *Publisher) publish(topic, serviceID, kind string, event proto.Message) {
	payload, err := proto.Marshal(event)
	if err != nil {
		p.log.Warn("Failed to marshal event",
			zap.String("event", kind), zap.Error(err))
		return
	}
	key := eventKey(serviceID)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		msg := kafka.Message{Key: []byte(key), Value: payload}
		if err := p.writerForTopic(topic).WriteMessages(ctx, msg); err != nil {
			p.log.Warn("Failed to emit event",
				zap.String("event", kind),
				zap.String("topic", topic),
				zap.String("service_id", serviceID),
				zap.Error(err))
			return
		}
		p.log.Debug("Emitted event",
			zap.String("event", kind),
			zap.String("service_id", serviceID))
	}()
}

func (p *Publisher) writerForTopic(topic string) messageWriter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if writer, ok := p.writers[topic]; ok {
		return writer
	}
	writer := p.newWriter(topic)
	p.writers[topic] = writer
	return writer
}

// eventKey derives the Kafka partition key from a service id. Ids that are
// already UUIDs pass through canonicalized, anything else maps to a stable
// MD5 name-based UUID, and blank ids get a random one.
func eventKey(serviceID string) string {
	if serviceID == "" {
		return uuid.NewString()
	}
	if parsed, err := uuid.Parse(serviceID); err == nil {
		return parsed.String()
	}
	return nameBasedUUID(serviceID).String()
}

// nameBasedUUID hashes the id and stamps RFC 4122 version 3 bits, matching
// the unsalted form downstream consumers key on.
func nameBasedUUID(serviceID string) uuid.UUID {
	sum := md5.Sum([]byte(serviceID))
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.UUID(sum)
}
