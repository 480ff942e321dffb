package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PubSubConfig defines the configuration options for Redis pub/sub
type PubSubConfig struct {
	// ChannelNamespace is the namespace for organizing channels
	ChannelNamespace string
}

// NewPubSubConfig creates a new pub/sub configuration with default values
func NewPubSubConfig() *PubSubConfig {
	return &PubSubConfig{
		ChannelNamespace: "",
	}
}

// WithChannelNamespace sets the namespace for organizing channels
func (psc *PubSubConfig) WithChannelNamespace(namespace string) *PubSubConfig {
	psc.ChannelNamespace = namespace
	return psc
}

// Publisher handles Redis publishing operations
type Publisher struct {
	client *redis.Client
	config *PubSubConfig
}

// NewPublisher creates a new publisher
func NewPublisher(client *redis.Client, config *PubSubConfig) *Publisher {
	if config == nil {
		config = NewPubSubConfig()
	}
	return &Publisher{
		client: client,
		config: config,
	}
}

// BuildChannelName constructs the full channel name using ChannelNamespace::channelName format
func (p *Publisher) BuildChannelName(channel string) string {
	if p.config.ChannelNamespace != "" {
		return p.config.ChannelNamespace + "::" + channel
	}
	return channel
}

// Publish publishes a message to a channel
func (p *Publisher) Publish(ctx context.Context, channel string, message interface{}) error {
	return p.client.Publish(ctx, p.BuildChannelName(channel), message).Err()
}

// PublishJSON publishes a JSON message to a channel
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message interface{}) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.Publish(ctx, channel, jsonData)
}
