package main

import (
	"errors"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"photizon/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/require"
)

type sweeperStub struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *sweeperStub) DeleteExpiredReservations() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return 1, s.err
}

func (s *sweeperStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestSweepReservationsStopsOnDone(t *testing.T) {
	t.Parallel()

	stub := &sweeperStub{}
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		sweepReservations(slogdiscard.NewDiscardLogger(), stub, time.Millisecond, done)
		close(exited)
	}()

	require.Eventually(t, func() bool { return stub.callCount() > 0 },
		time.Second, time.Millisecond)

	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after done was closed")
	}
}

func TestSweepReservationsContinuesAfterError(t *testing.T) {
	t.Parallel()

	stub := &sweeperStub{err: errors.New("database error")}
	done := make(chan struct{})
	defer close(done)

	go sweepReservations(slogdiscard.NewDiscardLogger(), stub, time.Millisecond, done)

	require.Eventually(t, func() bool { return stub.callCount() >= 2 },
		time.Second, time.Millisecond)
}

// A running sweeper must never receive from the signal channel, or it
// would swallow the one delivered signal and leave the shutdown path
// blocked.
func TestSweepReservationsLeavesShutdownSignalAlone(t *testing.T) {
	t.Parallel()

	stub := &sweeperStub{}
	done := make(chan struct{})
	defer close(done)

	go sweepReservations(slogdiscard.NewDiscardLogger(), stub, time.Hour, done)

	stop := make(chan os.Signal, 1)
	stop <- syscall.SIGTERM

	select {
	case sign := <-stop:
		require.Equal(t, syscall.SIGTERM, sign)
	case <-time.After(time.Second):
		t.Fatal("shutdown signal was not delivered to the main receiver")
	}
}
