package mq

import (
	"context"
	"testing"

	"github.com/songwish/apiserver/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfigNone(t *testing.T) {
	for _, backend := range []string{"", "none", "None"} {
		broker, err := NewFromConfig(context.Background(), config.MQConfig{Backend: backend})
		require.NoError(t, err)

		id, err := broker.Publish(context.Background(), ChannelLyricsGenerated, []byte("{}"), nil)
		assert.NoError(t, err)
		assert.Empty(t, id)
		assert.NoError(t, broker.Close())
	}
}

func TestNewFromConfigUnknownBackend(t *testing.T) {
	_, err := NewFromConfig(context.Background(), config.MQConfig{Backend: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestNewFromConfigRabbitMQRequiresURL(t *testing.T) {
	_, err := NewFromConfig(context.Background(), config.MQConfig{Backend: "rabbitmq"})
	assert.Error(t, err)
}

func TestNewFromConfigPubSubRequiresProject(t *testing.T) {
	_, err := NewFromConfig(context.Background(), config.MQConfig{Backend: "pubsub"})
	assert.Error(t, err)
}
