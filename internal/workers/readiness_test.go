package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingObserver struct {
	mu     sync.Mutex
	readyC []bool
}

func (o *recordingObserver) SetReady(ready bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.readyC = append(o.readyC, ready)
}

func (o *recordingObserver) values() []bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]bool(nil), o.readyC...)
}

func TestReadinessWorker_FirstProbeIsSynchronous(t *testing.T) {
	ctrl := gomock.NewController(t)
	health := mock.NewMockHealthService(ctrl)
	health.EXPECT().Probe(gomock.Any()).Return(errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs := &recordingObserver{}
	NewReadinessWorker(health, time.Hour, logger.Nop(), obs).Run(ctx)

	assert.Equal(t, []bool{false}, obs.values())
}

func TestReadinessWorker_ProbesPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	health := mock.NewMockHealthService(ctrl)

	// ---- сначала хранилище недоступно, затем поднимается
	gomock.InOrder(
		health.EXPECT().Probe(gomock.Any()).Return(errors.New("down")),
		health.EXPECT().Probe(gomock.Any()).Return(nil).MinTimes(1),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs := &recordingObserver{}
	NewReadinessWorker(health, 10*time.Millisecond, logger.Nop(), obs).Run(ctx)

	require.Eventually(t, func() bool {
		return len(obs.values()) >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	got := obs.values()
	assert.False(t, got[0])
	assert.True(t, got[1])
	assert.True(t, got[2])
}

func TestReadinessWorker_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	health := mock.NewMockHealthService(ctrl)

	var mu sync.Mutex
	calls := 0
	health.EXPECT().Probe(gomock.Any()).DoAndReturn(func(context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	NewReadinessWorker(health, 5*time.Millisecond, logger.Nop()).Run(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	// let an in-flight tick finish
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	after := calls
	mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, after, calls, "no probes after cancel")
}

func TestReadinessWorker_NonPositiveIntervalProbesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	health := mock.NewMockHealthService(ctrl)
	health.EXPECT().Probe(gomock.Any()).Return(nil).Times(1)

	obs := &recordingObserver{}
	NewReadinessWorker(health, 0, logger.Nop(), obs).Run(context.Background())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []bool{true}, obs.values())
}
