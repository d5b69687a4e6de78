package kafka

import (
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"rompefaja/internal/config"
)

// NewClient builds a consumer positioned at the end of the topic, so only
// records produced after the subscription is opened are delivered.
func NewClient(cfg config.FeedConfig) (*kgo.Client, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.Group),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtEnd()),
		kgo.BlockRebalanceOnPoll(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating feed consumer: %w", err)
	}

	return client, nil
}
