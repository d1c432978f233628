package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/vodmap/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Equal(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger nil uses default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Equal(t, logging.Default(), logging.FromContext(ctx))
	})

	t.Run("WithRunID tags the logger", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithRunID(ctx, "run-123")

		logging.FromContext(ctx).Info().Msg("hello")
		tl.AssertContains(t, `"run_id":"run-123"`)
	})

	t.Run("chaining context functions", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithRunID(ctx, "run-1")
		ctx = logging.WithStage(ctx, "extract")
		ctx = logging.WithURL(ctx, "https://github.com/o/r/raw/main/a.json")

		logging.FromContext(ctx).Info().Msg("chained")
		tl.AssertContains(t, `"run_id":"run-1"`)
		tl.AssertContains(t, `"stage":"extract"`)
		tl.AssertContains(t, `"url":"https://github.com/o/r/raw/main/a.json"`)
	})
}
