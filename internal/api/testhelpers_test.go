package api

import (
	"context"
	"testing"
	"time"

	"github.com/concave-dev/ingest/internal/scheduler"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// newTestServer builds a server over a real scheduler with no rate limit and
// an instant processor.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	sched, err := scheduler.New(&scheduler.Config{BatchSize: 2}, scheduler.NewSimulatedProcessor(0), nil)
	if err != nil {
		t.Fatalf("scheduler.New() error = %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = sched.Stop(ctx)
	})

	server := NewServer(&Config{
		BindAddr:  "127.0.0.1",
		BindPort:  0,
		Scheduler: sched,
		Gatherer:  prometheus.NewRegistry(),
	})
	gin.SetMode(gin.TestMode)
	return server
}
