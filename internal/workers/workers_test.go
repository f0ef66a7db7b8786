// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	mu       sync.Mutex
	runCount int
}

func (m *mockWorker) Run(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runCount++
}

func (m *mockWorker) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCount
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.count() != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.count())
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

// stubSynchronizer counts sweeps and signals the first one.
type stubSynchronizer struct {
	mu     sync.Mutex
	sweeps int
	first  chan struct{}
	once   sync.Once
}

func (s *stubSynchronizer) Synchronize(_ context.Context) ([]service.Outcome, error) {
	s.mu.Lock()
	s.sweeps++
	s.mu.Unlock()
	s.once.Do(func() { close(s.first) })
	return []service.Outcome{{TableID: "t1", Success: true}}, nil
}

func (s *stubSynchronizer) SynchronizeTable(_ context.Context, tableID string) (service.Outcome, error) {
	return service.Outcome{TableID: tableID, Success: true}, nil
}

func (s *stubSynchronizer) DropTable(_ context.Context, _ string) error {
	return nil
}

func (s *stubSynchronizer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweeps
}

func TestSyncWorker_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	stub := &stubSynchronizer{first: make(chan struct{})}
	w := NewSyncWorker(stub, config.ClientWorkers{SyncInterval: time.Hour}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-stub.first:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate sweep on startup")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}

	assert.Equal(t, 1, stub.count(), "hour-long interval must not tick during the test")
}

func TestSyncWorker_TicksOnInterval(t *testing.T) {
	stub := &stubSynchronizer{first: make(chan struct{})}
	w := NewSyncWorker(stub, config.ClientWorkers{SyncInterval: 10 * time.Millisecond}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return stub.count() >= 3 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestNewSyncWorker_DefaultsInterval(t *testing.T) {
	w := NewSyncWorker(&stubSynchronizer{first: make(chan struct{})}, config.ClientWorkers{}, logger.Nop())

	assert.Equal(t, defaultSyncInterval, w.interval)
}
