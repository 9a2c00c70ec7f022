package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/roster/pkg/logging"
)

func TestSetDefault(t *testing.T) {
	prev := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logging.SetDefault(logging.New(buf, zerolog.DebugLevel))

	logging.Default().Info().Msg("via default")
	log.Info().Msg("via zerolog global")

	assert.Contains(t, buf.String(), "via default")
	assert.Contains(t, buf.String(), "via zerolog global")
}

func TestNewRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New(buf, zerolog.WarnLevel)

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), `"time":`)
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithTable(ctx, "persons")
	ctx = logging.WithOperation(ctx, "merge")

	logging.FromContext(ctx).Info().Msg("reading table")

	tl.AssertContains(t, `"table":"persons"`)
	tl.AssertContains(t, `"operation":"merge"`)
	tl.AssertNotContains(t, `"row"`)
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Info().Msg("first")
	tl.Warn().Int("row", 2).Msg("second")
	tl.Warn().Msg("third")

	assert.Len(t, tl.Lines(), 3)
	assert.Equal(t, []string{"second", "third"}, tl.Messages(zerolog.WarnLevel))

	entries := tl.Entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, float64(2), entries[1]["row"])

	tl.Clear()
	assert.Empty(t, tl.Lines())
}

func TestCaptureDefault(t *testing.T) {
	tl := logging.CaptureDefault(t)

	logging.FromContext(context.Background()).Error().Msg("captured")

	tl.AssertContains(t, "captured")
}
