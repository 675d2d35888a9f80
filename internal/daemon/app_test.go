// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package daemon

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ManuGH/vodmeta/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeManager struct {
	startErr  error
	shutdowns atomic.Int32
}

func (f *fakeManager) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-ctx.Done()
	return nil
}

func (f *fakeManager) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	return nil
}

func (f *fakeManager) RegisterShutdownHook(string, ShutdownHook) {}

func TestApp_MissingManager(t *testing.T) {
	app := NewApp(log.WithComponent("test"), nil)
	require.ErrorIs(t, app.Run(context.Background()), ErrMissingManager)
}

func TestApp_StartFailureShutsDown(t *testing.T) {
	boom := errors.New("bind failed")
	mgr := &fakeManager{startErr: boom}
	app := NewApp(log.WithComponent("test"), mgr)

	require.ErrorIs(t, app.Run(context.Background()), boom)
	assert.Equal(t, int32(1), mgr.shutdowns.Load())
}

func TestApp_RunnerFailureStopsManager(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	mgr := &fakeManager{}
	app := NewApp(log.WithComponent("test"), mgr)
	boom := errors.New("runner crashed")
	app.AddRunner("crasher", func(context.Context) error { return boom })

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after runner failure")
	}
}

func TestApp_CancelStopsEverything(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	mgr := &fakeManager{}
	app := NewApp(log.WithComponent("test"), mgr)
	var runnerStopped atomic.Bool
	app.AddRunner("waiter", func(ctx context.Context) error {
		<-ctx.Done()
		runnerStopped.Store(true)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	require.NoError(t, <-done)
	assert.True(t, runnerStopped.Load())
}
