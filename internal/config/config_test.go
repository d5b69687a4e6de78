package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Feed.Brokers)
	assert.Equal(t, 5*time.Second, cfg.Feed.DedupWindow)
	assert.Equal(t, 5*time.Second, cfg.Notify.TTL)
}

func TestLoad_SplitsCommaSeparatedBrokers(t *testing.T) {
	t.Setenv("FEED_BROKERS", "kafka-1:9092, kafka-2:9092,kafka-3:9092")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092", "kafka-3:9092"}, cfg.Feed.Brokers)
}

func TestSplitBrokers_DropsEmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"a:9092"}, splitBrokers("a:9092,"))
	assert.Empty(t, splitBrokers(""))
}
