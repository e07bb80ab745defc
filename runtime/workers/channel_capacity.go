package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"sharemyshows-live/observability"
)

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically copies the length and capacity of internal
// channels into gauges. Reading len and cap never blocks the channel owners.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	metrics        *observability.Metrics
	channels       []NamedChannel
	metricInterval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger, metrics *observability.Metrics,
	channels []NamedChannel, metricInterval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:            log,
		metrics:        metrics,
		channels:       channels,
		metricInterval: metricInterval,
	}
}

func (w ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel sampling")
			return nil
		case <-ticker.C:
			w.Sample()
		}
	}
}

// Sample reads every channel once.
func (w ChannelCapacityWorker) Sample() {
	for _, nc := range w.channels {
		v := reflect.ValueOf(nc.Channel)
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		w.metrics.ChannelLength.WithLabelValues(nc.Name).Set(float64(v.Len()))
		w.metrics.ChannelCap.WithLabelValues(nc.Name).Set(float64(v.Cap()))
	}
}
