package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForErr_EachIndexOnce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4
	cfg.MinChunkSize = 8

	hits := make([]int32, 1000)
	err := ForErr(context.Background(), len(hits), func(i int) error {
		atomic.AddInt32(&hits[i], 1)
		return nil
	}, cfg)
	require.NoError(t, err)
	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestForErr_Sequential(t *testing.T) {
	var order []int
	err := ForErr(context.Background(), 5, func(i int) error {
		order = append(order, i)
		return nil
	}, Sequential())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestForErr_Empty(t *testing.T) {
	called := false
	err := ForErr(context.Background(), 0, func(int) error { called = true; return nil }, DefaultConfig())
	require.NoError(t, err)
	assert.False(t, called)
}

func TestChunks(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 2}
	assert.Equal(t, [][2]int{{0, 4}, {4, 8}, {8, 10}}, chunks(10, cfg))

	// Small inputs stay on one chunk.
	assert.Equal(t, [][2]int{{0, 1}}, chunks(1, cfg))
	assert.Equal(t, [][2]int{{0, 10}}, chunks(10, Sequential()))
}

func TestForErr(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 4}
	var counter int64
	err := ForErr(context.Background(), 100, func(int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(100), counter)
}

func TestForErr_FirstError(t *testing.T) {
	sentinel := errors.New("boom")
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 4}
	err := ForErr(context.Background(), 100, func(i int) error {
		if i == 37 {
			return sentinel
		}
		return nil
	}, cfg)
	assert.ErrorIs(t, err, sentinel)
}

func TestForErr_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForErr(ctx, 10, func(int) error { return nil }, Sequential())
	assert.ErrorIs(t, err, context.Canceled)
}
