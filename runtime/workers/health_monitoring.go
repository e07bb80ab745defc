package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"sharemyshows-live/observability"

	"github.com/shirou/gopsutil/process"
)

// HealthReporter receives the liveness verdict of each round.
type HealthReporter interface {
	SetServing(serving bool)
}

// HealthMonitoringWorker samples the service process into gauges and probes the presence
// loop. A probe that does not answer within the interval marks the service as not serving.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	metrics        *observability.Metrics
	probe          func(ctx context.Context) error
	reporter       HealthReporter
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(
	log *slog.Logger,
	metrics *observability.Metrics,
	probe func(ctx context.Context) error,
	reporter HealthReporter,
	metricInterval time.Duration,
) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		metrics:        metrics,
		probe:          probe,
		reporter:       reporter,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.Check(ctx)
			w.sample(p)
		}
	}
}

// Check runs one liveness probe and reports it.
func (w *HealthMonitoringWorker) Check(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, w.metricInterval)
	defer cancel()
	err := w.probe(probeCtx)
	if err != nil {
		w.log.Warn("Presence loop probe failed", "error", err)
	}
	w.reporter.SetServing(err == nil)
	return err == nil
}

func (w *HealthMonitoringWorker) sample(p *process.Process) {
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "err", err)
		return
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		w.log.Error("Error while finding process ram usage", "err", err)
		return
	}
	w.metrics.ProcessCPU.Set(cpu)
	w.metrics.ProcessMemory.Set(float64(ram))
}
