package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
)

type captureWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (c *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, msgs...)
	return nil
}

func (c *captureWriter) Close() error { return nil }

func (c *captureWriter) messages() []kafka.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]kafka.Message(nil), c.msgs...)
}

func testTopics() Topics {
	return Topics{
		ServiceRegistered:   "opensearch-service-registered-events",
		ServiceUnregistered: "opensearch-service-unregistered-events",
		ModuleRegistered:    "opensearch-module-registered-events",
		ModuleUnregistered:  "opensearch-module-unregistered-events",
	}
}

// newCapturingPublisher routes every topic to an in-memory writer.
func newCapturingPublisher() (*Publisher, map[string]*captureWriter) {
	captures := make(map[string]*captureWriter)
	var mu sync.Mutex
	p := NewPublisher(nil, testTopics(), zap.NewNop())
	p.newWriter = func(topic string) messageWriter {
		mu.Lock()
		defer mu.Unlock()
		c := &captureWriter{}
		captures[topic] = c
		return c
	}
	return p, captures
}

func TestEmitServiceRegistered(t *testing.T) {
	p, captures := newCapturingPublisher()

	p.EmitServiceRegistered("auth-svc-10.0.0.1-7000", "auth-svc", "10.0.0.1", 7000, "1.4.2")
	p.wg.Wait()

	writer := captures["opensearch-service-registered-events"]
	require.NotNil(t, writer)
	msgs := writer.messages()
	require.Len(t, msgs, 1)

	assert.Equal(t, "9b250a90-3bf9-30c1-8d60-a35f5d757cab", string(msgs[0].Key))

	var event registrationv1.ServiceRegistered
	require.NoError(t, proto.Unmarshal(msgs[0].Value, &event))
	assert.Equal(t, "auth-svc-10.0.0.1-7000", event.GetServiceId())
	assert.Equal(t, "auth-svc", event.GetServiceName())
	assert.Equal(t, "10.0.0.1", event.GetHost())
	assert.Equal(t, int32(7000), event.GetPort())
	assert.Equal(t, "1.4.2", event.GetVersion())
	assert.NotNil(t, event.GetTimestamp())
}

func TestEmitModuleRegistered(t *testing.T) {
	p, captures := newCapturingPublisher()

	p.EmitModuleRegistered("pdf-extract-10.0.0.5-50051", "pdf-extract", "10.0.0.5", 50051,
		"2.1.0", "pdf-extract-2_1_0", "pdf-extract-config-v2_1_0")
	p.wg.Wait()

	writer := captures["opensearch-module-registered-events"]
	require.NotNil(t, writer)
	msgs := writer.messages()
	require.Len(t, msgs, 1)

	var event registrationv1.ModuleRegistered
	require.NoError(t, proto.Unmarshal(msgs[0].Value, &event))
	assert.Equal(t, "pdf-extract", event.GetModuleName())
	assert.Equal(t, "pdf-extract-2_1_0", event.GetSchemaId())
	assert.Equal(t, "pdf-extract-config-v2_1_0", event.GetApicurioArtifactId())
}

func TestEmitUnregisteredEvents(t *testing.T) {
	p, captures := newCapturingPublisher()

	p.EmitServiceUnregistered("auth-svc-10.0.0.1-7000", "auth-svc")
	p.EmitModuleUnregistered("pdf-extract-10.0.0.5-50051", "pdf-extract")
	p.wg.Wait()

	svc := captures["opensearch-service-unregistered-events"]
	require.NotNil(t, svc)
	require.Len(t, svc.messages(), 1)

	var event registrationv1.ServiceUnregistered
	require.NoError(t, proto.Unmarshal(svc.messages()[0].Value, &event))
	assert.Equal(t, "auth-svc", event.GetServiceName())

	mod := captures["opensearch-module-unregistered-events"]
	require.NotNil(t, mod)
	require.Len(t, mod.messages(), 1)
}

func TestEmitSurvivesWriterError(t *testing.T) {
	p, captures := newCapturingPublisher()

	p.EmitServiceRegistered("auth-svc-10.0.0.1-7000", "auth-svc", "10.0.0.1", 7000, "1.4.2")
	p.wg.Wait()
	captures["opensearch-service-registered-events"].err = errors.New("broker unavailable")

	// A failing broker only logs; the caller never sees an error.
	p.EmitServiceRegistered("auth-svc-10.0.0.1-7000", "auth-svc", "10.0.0.1", 7000, "1.4.2")
	p.wg.Wait()

	assert.Len(t, captures["opensearch-service-registered-events"].messages(), 1)
	require.NoError(t, p.Close())
}

func TestEventKey(t *testing.T) {
	// Well-formed UUIDs pass through unchanged.
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000",
		eventKey("123e4567-e89b-12d3-a456-426614174000"))

	// Service ids hash to a stable name-based UUID.
	assert.Equal(t, "c79caf0c-8f81-3aa8-bcb7-db0a80912ca8",
		eventKey("pdf-extract-10.0.0.5-50051"))
	assert.Equal(t, eventKey("pdf-extract-10.0.0.5-50051"),
		eventKey("pdf-extract-10.0.0.5-50051"))

	// Blank ids get a random but parseable key.
	first := eventKey("")
	second := eventKey("")
	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestWriterForTopicReuse(t *testing.T) {
	p, _ := newCapturingPublisher()

	first := p.writerForTopic("a")
	second := p.writerForTopic("a")
	assert.Same(t, first, second)
	assert.NotSame(t, first, p.writerForTopic("b"))
}
