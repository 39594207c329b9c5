package core

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWorkerMaxCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 3, GetWorkerMaxCount(ctx, 3))
	assert.Equal(t, 7, GetWorkerMaxCount(WithWorkerOptions(ctx, 7), 3))
	assert.Equal(t, 3, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 3))
}

func TestGetPollInterval(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, DefaultPollInterval, GetPollInterval(ctx, DefaultPollInterval))
	assert.Equal(t, 5*time.Millisecond, GetPollInterval(WithPollOptions(ctx, 5*time.Millisecond), DefaultPollInterval))
	assert.Equal(t, DefaultPollInterval, GetPollInterval(WithPollOptions(ctx, -1), DefaultPollInterval))
}

func TestGetLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	require.NotNil(t, GetLogger(ctx))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	GetLogger(WithLogger(ctx, logger)).Info("dispatched", "task", "a")

	assert.Contains(t, buf.String(), "task=a")
}
