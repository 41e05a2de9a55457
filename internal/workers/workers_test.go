// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package workers

import (
	"context"
	"sync"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(newOrderWorker(1), newOrderWorker(2), newOrderWorker(3))
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

// jobSpy records Start parameters for the sync worker test.
type jobSpy struct {
	mu       sync.Mutex
	started  bool
	ownerID  int64
	interval time.Duration
}

func (j *jobSpy) Start(_ context.Context, ownerID int64, interval time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.started = true
	j.ownerID = ownerID
	j.interval = interval
}

func (j *jobSpy) Stop() {}

func TestSyncWorker_Run_StartsJobWithOwnerAndInterval(t *testing.T) {
	spy := &jobSpy{}
	w := NewSyncWorker(context.Background(), spy, 42, 3*time.Minute)

	w.Run()

	spy.mu.Lock()
	defer spy.mu.Unlock()
	if !spy.started {
		t.Fatal("expected Run to start the sync job")
	}
	if spy.ownerID != 42 {
		t.Errorf("expected ownerID=42, got %d", spy.ownerID)
	}
	if spy.interval != 3*time.Minute {
		t.Errorf("expected interval=3m, got %s", spy.interval)
	}
}
