package script_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/calckit/internal/script"
	"github.com/dmitrymomot/calckit/pkg/calculator"
	"github.com/dmitrymomot/calckit/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses sample script", func(t *testing.T) {
		f, err := os.Open("testdata/sample.yaml")
		require.NoError(t, err)
		defer f.Close()

		s, err := script.Parse(context.Background(), f)
		require.NoError(t, err)
		require.Len(t, s.Steps, 11)

		assert.Equal(t, script.KindOp, s.Steps[0].Kind())
		assert.Equal(t, []float64{5, 3}, s.Steps[0].Args)
		assert.Equal(t, script.KindCheck, s.Steps[8].Kind())
		assert.Equal(t, "email", s.Steps[8].Name(), "check names are normalized")
		assert.Equal(t, script.KindTransform, s.Steps[10].Kind())
	})

	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "empty document", input: "", expected: script.ErrEmptyScript},
		{name: "no steps", input: "steps: []", expected: script.ErrEmptyScript},
		{name: "invalid yaml", input: "steps: [", expected: script.ErrFailedToParse},
		{name: "unknown field", input: "steps:\n  - op: add\n    argz: [1, 2]", expected: script.ErrFailedToParse},
		{name: "no kind", input: "steps:\n  - value: x", expected: script.ErrInvalidStep},
		{name: "two kinds", input: "steps:\n  - op: add\n    check: email\n    args: [1, 2]", expected: script.ErrInvalidStep},
		{name: "unknown op", input: "steps:\n  - op: pow\n    args: [1, 2]", expected: calculator.ErrUnknownOperation},
		{name: "wrong arity", input: "steps:\n  - op: add\n    args: [1]", expected: script.ErrInvalidStep},
		{name: "unknown check", input: "steps:\n  - check: phone\n    value: x", expected: script.ErrUnknownCheck},
		{name: "unknown transform", input: "steps:\n  - transform: lower\n    value: x", expected: script.ErrUnknownTransform},
		{name: "args on check", input: "steps:\n  - check: email\n    args: [1]", expected: script.ErrInvalidStep},
		{name: "value on op", input: "steps:\n  - op: add\n    args: [1, 2]\n    value: x", expected: script.ErrInvalidStep},
		{name: "empty bare list", input: "[]", expected: script.ErrEmptyScript},
		{name: "unknown field in bare list", input: "- op: add\n  argz: [1, 2]", expected: script.ErrFailedToParse},
		{name: "scalar document", input: "add", expected: script.ErrFailedToParse},
		{name: "non-numeric arg", input: "steps:\n  - op: add\n    args: [a, 2]", expected: script.ErrFailedToParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := script.Parse(context.Background(), strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("bare list of steps", func(t *testing.T) {
		t.Parallel()
		s, err := script.Parse(context.Background(), strings.NewReader("- op: add\n  args: [1, 2]\n- transform: UPPER\n  value: hi\n"))
		require.NoError(t, err)
		require.Len(t, s.Steps, 2)
		assert.Equal(t, script.KindOp, s.Steps[0].Kind())
		assert.Equal(t, []float64{1, 2}, s.Steps[0].Args)
		assert.Equal(t, "upper", s.Steps[1].Name())
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := script.Parse(ctx, strings.NewReader("steps: []"))
		assert.ErrorIs(t, err, script.ErrParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("step number in error", func(t *testing.T) {
		t.Parallel()
		_, err := script.Parse(context.Background(), strings.NewReader("steps:\n  - op: add\n    args: [1, 2]\n  - op: div\n    args: [1]"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "step 2")
	})
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	f, err := os.Open("testdata/sample.yaml")
	require.NoError(t, err)
	defer f.Close()

	s, err := script.Parse(context.Background(), f)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

	results, err := script.NewRunner(log).Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, results, 11)

	expected := []any{8.0, 2.0, 15.0, 2.5, nil, 120.0, nil, true, false, true, "HELLO"}
	for i, res := range results {
		assert.Equal(t, i+1, res.Step)
		assert.Equal(t, expected[i], res.Value, "step %d", res.Step)
	}

	assert.ErrorIs(t, results[4].Err, calculator.ErrDivisionByZero)
	assert.ErrorIs(t, results[6].Err, calculator.ErrNegativeFactorial)
	assert.NoError(t, results[0].Err)

	assert.Contains(t, buf.String(), `"component":"script"`)
	assert.Contains(t, buf.String(), "step failed")
}

func TestRunner_Cancelled(t *testing.T) {
	t.Parallel()

	s := &script.Script{Steps: []script.Step{{Op: "add", Args: []float64{1, 2}}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := script.NewRunner(nil).Run(ctx, s)
	assert.ErrorIs(t, err, script.ErrRunCancelled)
	assert.Empty(t, results)
}
