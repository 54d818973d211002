package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaar/complexcalc/internal/cli"
	"github.com/mamaar/complexcalc/pkg/types"
)

// syncBuffer is a bytes.Buffer safe for the concurrent writes of the watch
// command.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Bytes() []byte {
	return []byte(b.String())
}

// setupCLI redirects command output and installs fresh flags parsed from args.
func setupCLI(t *testing.T, args ...string) (stdout, stderr *syncBuffer) {
	t.Helper()
	stdout, stderr = &syncBuffer{}, &syncBuffer{}

	oldOut, oldErr, oldFlags := cli.Stdout, cli.Stderr, cli.GlobalFlags
	t.Cleanup(func() {
		cli.Stdout, cli.Stderr, cli.GlobalFlags = oldOut, oldErr, oldFlags
	})

	fs := flag.NewFlagSet("complexcalc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cli.GlobalFlags = cli.InitFlags(fs)
	require.NoError(t, fs.Parse(args))

	cli.Stdout, cli.Stderr = stdout, stderr
	return stdout, stderr
}

func TestRunOperation_Text(t *testing.T) {
	testCases := []struct {
		name     string
		op       string
		a, b     string
		expected string
		logged   string
	}{
		{"addition", "addition", "4+3i", "2-1i", "Addition: (6 + 2i)\n", "Addition: (4 + 3i) + (2 + -1i) = (6 + 2i)"},
		{"multiplication", "mul", "4,3", "2,-1", "Multiplication: (11 + 2i)\n", "Multiplication: (4 + 3i) * (2 + -1i) = (11 + 2i)"},
		{"division", "/", "(4 + 3i)", "(2 + -1i)", "Division: (1 + 2i)\n", "Division: (4 + 3i) / (2 + -1i) = (1 + 2i)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr := setupCLI(t)

			require.NoError(t, runOperation(tc.op, []string{tc.a, tc.b}))
			assert.Equal(t, tc.expected, stdout.String())
			assert.Contains(t, stderr.String(), " - INFO - "+tc.logged)
		})
	}
}

func TestRunOperation_JSON(t *testing.T) {
	stdout, _ := setupCLI(t, "--json", "--quiet")

	require.NoError(t, runOperation("div", []string{"4+3i", "2-1i"}))

	var out CalculationOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "division", out.Operation)
	assert.Equal(t, types.NewComplexNumber(1, 2), out.Result)
	assert.Equal(t, "(1 + 2i)", out.Text)
}

func TestRunOperation_DivisionByZero(t *testing.T) {
	stdout, stderr := setupCLI(t)

	err := runOperation("div", []string{"1", "0,0"})
	require.ErrorIs(t, err, types.ErrDivisionByZero)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), " - ERROR - Division by zero!")
	assert.Equal(t, "division by zero", describeError(err))
}

func TestRunOperation_Errors(t *testing.T) {
	setupCLI(t, "--quiet")

	assert.Error(t, runOperation("add", []string{"1"}))
	assert.Error(t, runOperation("add", []string{"abc", "1"}))
	assert.Error(t, runOperation("add", []string{"1", "abc"}))
	assert.Error(t, runOperation("pow", []string{"1", "2"}))
}

func TestRunOperation_Quiet(t *testing.T) {
	_, stderr := setupCLI(t, "--quiet")

	require.NoError(t, runOperation("add", []string{"1", "2"}))
	assert.Empty(t, stderr.String())
}

func TestRunDemo(t *testing.T) {
	stdout, stderr := setupCLI(t)

	require.NoError(t, runDemo())
	assert.Equal(t, "Addition: (6 + 2i)\nMultiplication: (11 + 2i)\nDivision: (1 + 2i)\n", stdout.String())
	assert.Equal(t, 3, strings.Count(stderr.String(), " - INFO - "))
}

func writeBatch(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const batchYAML = `calculations:
  - operation: add
    a: {real: 4, imag: 3}
    b: {real: 2, imag: -1}
  - operation: div
    a: {real: 1, imag: 0}
    b: {real: 0, imag: 0}
  - operation: mul
    a: {real: 4, imag: 3}
    b: {real: 2, imag: -1}
`

func TestRunBatch(t *testing.T) {
	stdout, _ := setupCLI(t, "--quiet")
	path := writeBatch(t, "calc.yaml", batchYAML)

	report, err := runBatch(path)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)

	printReport(path, report)
	out := stdout.String()
	assert.Contains(t, out, "1. (4 + 3i) add (2 + -1i) = (6 + 2i)")
	assert.Contains(t, out, "2. (1 + 0i) div (0 + 0i) -> ERROR: division: division by zero")
	assert.Contains(t, out, "3. (4 + 3i) mul (2 + -1i) = (11 + 2i)")
	assert.Contains(t, out, "Succeeded: 2, Failed: 1")
}

func TestRunBatch_StopOnErrorFlag(t *testing.T) {
	setupCLI(t, "--quiet", "--stop-on-error")
	path := writeBatch(t, "calc.yaml", batchYAML)

	report, err := runBatch(path)
	require.ErrorIs(t, err, types.ErrDivisionByZero)
	require.NotNil(t, report)
	assert.Len(t, report.Results, 2)
}

func TestRunWatch_EvaluatesAndReevaluates(t *testing.T) {
	stdout, _ := setupCLI(t, "--quiet")
	path := writeBatch(t, "watch.yaml", batchYAML)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runWatch(ctx, path, 50*time.Millisecond) }()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`calculations:
  - operation: mul
    a: {real: 0, imag: 1}
    b: {real: 0, imag: 1}
`), 0o644))

	assert.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "(-1 + 0i)")
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("runWatch did not stop after cancellation")
	}
	assert.Contains(t, stdout.String(), "(6 + 2i)")
}

func TestRunWatch_RejectsNonBatchFile(t *testing.T) {
	setupCLI(t, "--quiet")
	assert.Error(t, runWatch(context.Background(), "main.go", time.Millisecond))
}

func TestListOperations(t *testing.T) {
	infos := ListOperations()
	require.Len(t, infos, 3)
	assert.Equal(t, OperationInfo{Name: "addition", Symbol: "+", Description: "Add two complex numbers"}, infos[0])
	assert.Equal(t, "*", infos[1].Symbol)
	assert.Equal(t, "/", infos[2].Symbol)
}

func TestOperationsCommand_JSON(t *testing.T) {
	stdout, _ := setupCLI(t, "--json")

	OperationsCommand(nil)

	var infos []OperationInfo
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &infos))
	assert.Len(t, infos, 3)
}

func TestHelpCommand(t *testing.T) {
	stdout, _ := setupCLI(t)

	HelpCommand([]string{"div"})
	assert.Contains(t, stdout.String(), "Div Command")
}

func TestRegisterAll(t *testing.T) {
	runner := cli.NewRunner()
	RegisterAll(runner)

	assert.Equal(t, []string{"add", "batch", "calc", "demo", "div", "help", "mul", "operations", "version", "watch"}, runner.CommandNames())
}
