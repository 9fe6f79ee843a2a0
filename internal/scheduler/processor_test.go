package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedProcessor(t *testing.T) {
	p := NewSimulatedProcessor(5 * time.Millisecond)

	res, err := p.Process(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, Result{ID: 42, Data: "processed"}, res)
}

func TestSimulatedProcessor_Cancelled(t *testing.T) {
	p := NewSimulatedProcessor(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Process(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessorFunc(t *testing.T) {
	var p Processor = ProcessorFunc(func(_ context.Context, id int) (Result, error) {
		return Result{ID: id, Data: "ok"}, nil
	})
	res, err := p.Process(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Data)
}
