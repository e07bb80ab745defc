package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"sharemyshows-live/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)

	var calls, restarts atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log, 20*time.Millisecond).
		OnRestart(func(string) { restarts.Add(1) })

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	// When the worker keeps panicking until the deadline
	sup.Add(workerMock).Run(ctx)

	// Then it has been restarted several times
	req.GreaterOrEqual(calls.Load(), int32(2))
	req.GreaterOrEqual(restarts.Load(), int32(1))
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(log, 20*time.Millisecond)

	// Given a channel to notify when Run() terminated
	done := make(chan struct{})

	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// Then supervisor detected a success and stopped
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_Stop(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)

	started := make(chan struct{})
	// Given a worker blocking until its context ends
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return nil
		}).
		Times(1)

	sup := NewSupervisor(log, 20*time.Millisecond)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()
	<-started

	// When the supervisor is stopped
	sup.Stop()

	// Then Run returns
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped")
	}
}
