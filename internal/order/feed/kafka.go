package feed

import (
	"context"
	"encoding/json"

	"github.com/twmb/franz-go/pkg/kgo"
)

// changeEnvelope is the wire shape of one feed record. Producers that
// publish bare order documents are accepted as added changes.
type changeEnvelope struct {
	Kind  string          `json:"kind"`
	Order json.RawMessage `json:"order"`
}

// KafkaSource adapts a franz-go client to the Source contract. The client is
// expected to consume from the end of the topic so only post-subscription
// records arrive.
type KafkaSource struct {
	client *kgo.Client
}

func NewKafkaSource(client *kgo.Client) *KafkaSource {
	return &KafkaSource{client: client}
}

func (s *KafkaSource) Poll(ctx context.Context) ([]Change, error) {
	fetches := s.client.PollFetches(ctx)
	defer s.client.AllowRebalance()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if errs := fetches.Errors(); len(errs) > 0 {
		return nil, errs[0].Err
	}

	var changes []Change
	iter := fetches.RecordIter()
	for !iter.Done() {
		record := iter.Next()

		var envelope changeEnvelope
		if err := json.Unmarshal(record.Value, &envelope); err != nil || envelope.Kind == "" {
			changes = append(changes, Change{Kind: ChangeAdded, Payload: record.Value})
			continue
		}

		changes = append(changes, Change{Kind: envelope.Kind, Payload: envelope.Order})
	}

	return changes, nil
}

func (s *KafkaSource) Close() {
	s.client.Close()
}
