package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/handler"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/service"
	"github.com/MKhiriev/go-hr-portal/internal/store"
	"github.com/MKhiriev/go-hr-portal/internal/workers"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

type blockingWorker struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.started.Store(true)
	<-ctx.Done()
	w.stopped.Store(true)
}

func newTestServer(t *testing.T, addr string, worker workers.Worker) Server {
	t.Helper()

	log := logger.Nop()
	cfg := config.ServerHTTP{HTTPAddress: addr, RequestTimeout: time.Second}
	auth := config.ServerAuth{
		TokenSignKey:         "server-test",
		TokenIssuer:          "hr-devserver-test",
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: time.Hour,
	}

	handlers, err := handler.NewHandlers(service.NewServices(store.NewStorages(log), auth, log), cfg, log)
	require.NoError(t, err)

	srv, err := NewServer(handlers, workers.NewWorkers(worker), cfg, log)
	require.NoError(t, err)
	return srv
}

func TestServer_RunServesAndStops(t *testing.T) {
	addr := freeAddress(t)
	worker := &blockingWorker{}
	srv := newTestServer(t, addr, worker)

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/employees", addr))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusUnauthorized
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, worker.started.Load())

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, worker.stopped.Load())
}

func TestServer_ListenFailureStopsWorkers(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	worker := &blockingWorker{}
	srv := newTestServer(t, busy.Addr().String(), worker)

	err = srv.Run(t.Context())

	require.Error(t, err)
	assert.True(t, worker.stopped.Load())
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, nil, config.ServerHTTP{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, srv)
}
