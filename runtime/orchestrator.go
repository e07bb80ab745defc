package runtime

import (
	"context"
	"log/slog"
	"sync"

	"sharemyshows-live/contract"
)

// Orchestrator runs the presence loop and its companion workers under one supervisor.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	engine     *Engine
	companions []contract.Worker
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, engine *Engine,
	companions ...contract.Worker) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		engine:     engine,
		companions: companions,
	}
}

// Start registers every worker and blocks until ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	o.supervisor.Add(o.engine)
	o.supervisor.Add(o.companions...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "workers", len(o.companions)+1)
	o.supervisor.Run(ctx)
}

// Stop cancels the supervised context, then releases every caller still waiting on the loop.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
	o.engine.Close()
}
