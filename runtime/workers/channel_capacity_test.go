package workers

import (
	"log/slog"
	"testing"
	"time"

	"sharemyshows-live/observability"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestChannelCapacity_Sample(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	// Given an inbox holding two of its eight slots, and something that is not a channel
	inbox := make(chan any, 8)
	inbox <- 1
	inbox <- 2
	worker := NewChannelCapacityWorker(log, metrics, []NamedChannel{
		{Name: "presence_inbox", Channel: inbox},
		{Name: "not_a_channel", Channel: 42},
	}, time.Second)

	// When it is sampled
	worker.Sample()

	// Then the gauges follow the channel and the stray entry is skipped
	req.Equal(float64(2), testutil.ToFloat64(metrics.ChannelLength.WithLabelValues("presence_inbox")))
	req.Equal(float64(8), testutil.ToFloat64(metrics.ChannelCap.WithLabelValues("presence_inbox")))
	req.Equal(1, testutil.CollectAndCount(metrics.ChannelLength))
}
