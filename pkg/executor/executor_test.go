package executor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
)

func TestRunCapturesOutput(t *testing.T) {
	var out bytes.Buffer
	exe := New(WithStdout(&out))

	result, err := exe.Run(context.Background(), "echo", "hello")
	require.NoError(t, err)

	assert.Equal(t, "echo hello", result.Command)
	assert.Equal(t, 0, result.ExitCode)
	assert.Positive(t, result.Duration)
	assert.Contains(t, out.String(), "hello")
}

func TestRunCapturesStderr(t *testing.T) {
	var errOut bytes.Buffer
	exe := New(WithStdout(new(bytes.Buffer)), WithStderr(&errOut))

	_, err := exe.Run(context.Background(), "sh", "-c", "echo oops >&2")
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "oops")
}

func TestRunNonZeroExit(t *testing.T) {
	exe := New(WithStdout(new(bytes.Buffer)), WithStderr(new(bytes.Buffer)))

	result, err := exe.Run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)

	assert.True(t, xerrors.HasCode(err, xerrors.ErrCodeExternalTool))
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, 3, xerrors.ExitCode(err))
}

func TestRunToolNotFound(t *testing.T) {
	exe := New(WithStdout(new(bytes.Buffer)))

	_, err := exe.Run(context.Background(), "xmsconan-no-such-tool")
	require.Error(t, err)

	assert.True(t, xerrors.HasCode(err, xerrors.ErrCodeExternalTool))
	assert.Contains(t, err.Error(), "not found in PATH")
}

func TestRunDryRunPrintsWithoutExecuting(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "created-by-tool")

	var out bytes.Buffer
	exe := New(WithStdout(&out), WithDryRun(true))

	result, err := exe.Run(context.Background(), "touch", marker)
	require.NoError(t, err)

	assert.Equal(t, "touch "+marker, result.Command)
	assert.Contains(t, out.String(), "touch "+marker)
	assert.NoFileExists(t, marker)
}

func TestRunWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0o644))

	var out bytes.Buffer
	exe := New(WithStdout(&out), WithWorkingDir(dir))

	_, err := exe.Run(context.Background(), "ls")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "marker.txt")
}

func TestRunEnv(t *testing.T) {
	var out bytes.Buffer
	exe := New(WithStdout(&out), WithEnvVar("XMSCONAN_TEST_VALUE", "forty-two"))

	_, err := exe.Run(context.Background(), "sh", "-c", "echo value=$XMSCONAN_TEST_VALUE")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "value=forty-two")
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exe := New(WithStdout(new(bytes.Buffer)), WithStderr(new(bytes.Buffer)))

	_, err := exe.Run(ctx, "sleep", "10")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, xerrors.ExitCode(err))
}

func TestRunWithPerCallOverrides(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "skipped")

	var out bytes.Buffer
	exe := New(WithStdout(&out))

	_, err := exe.RunWith(context.Background(), "touch", []string{marker}, []Option{WithDryRun(true)})
	require.NoError(t, err)
	assert.NoFileExists(t, marker)

	// the base executor is unchanged, a following call still executes
	_, err = exe.Run(context.Background(), "touch", marker)
	require.NoError(t, err)
	assert.FileExists(t, marker)
}

func TestWithEnvMerges(t *testing.T) {
	opts := Options{}
	WithEnv(map[string]string{"A": "1"})(&opts)
	WithEnv(map[string]string{"B": "2"})(&opts)
	WithEnvVar("C", "3")(&opts)

	assert.Equal(t, map[string]string{"A": "1", "B": "2", "C": "3"}, opts.Env)
}
