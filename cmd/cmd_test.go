package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/huby-dev/huby/lib/exitcode"
	"github.com/huby-dev/huby/log"
	"github.com/huby-dev/huby/size"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	_, parseErr := size.Parse("1 parsec")
	_, overflowErr := size.Parse("16EiB")
	_, negativeErr := size.Parse("-1GB")
	_, underflowErr := size.FromBytes(1).Sub(size.FromBytes(2))
	for _, test := range []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitcode.Success},
		{"config", configError{errors.New("bad config")}, exitcode.ConfigError},
		{"wrapped config", errors.Wrap(configError{errors.New("bad config")}, "outer"), exitcode.ConfigError},
		{"not enough", errorNotEnoughArguments, exitcode.UsageError},
		{"too many", errorTooManyArguments, exitcode.UsageError},
		{"unknown unit", parseErr, exitcode.InvalidSize},
		{"negative", negativeErr, exitcode.InvalidSize},
		{"bare invalid format", size.ErrInvalidFormat, exitcode.InvalidSize},
		{"parse overflow", overflowErr, exitcode.OutOfRange},
		{"underflow", underflowErr, exitcode.OutOfRange},
		{"wrapped overflow", errors.Wrap(size.ErrOverflow, "sum"), exitcode.OutOfRange},
		{"other", errors.New("potato"), exitcode.UncategorizedError},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ExitCode(test.err))
		})
	}
}

func TestParseArgs(t *testing.T) {
	sizes, err := ParseArgs([]string{"1KB", "1 KiB", "7"})
	require.NoError(t, err)
	assert.Equal(t, size.List{size.KB, size.KiB, 7}, sizes)

	sizes, err = ParseArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, sizes)

	_, err = ParseArgs([]string{"1KB", "lots"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, size.ErrNoNumber))
}

func TestConfigError(t *testing.T) {
	inner := errors.New("bad config")
	err := configError{inner}
	assert.Equal(t, "bad config", err.Error())
	assert.Equal(t, inner, errors.Cause(err))
	assert.True(t, errors.Is(err, inner))
}

func TestReportFailure(t *testing.T) {
	defer func() {
		require.NoError(t, log.InitLogging(log.DefaultOptions()))
	}()
	failure := errors.New("potato")

	// logging to stderr, nothing extra written
	require.NoError(t, log.InitLogging(log.DefaultOptions()))
	var buf bytes.Buffer
	reportFailure(&buf, "sum", failure)
	assert.Equal(t, "", buf.String())

	// logging to a file, the failure is written to both
	path := filepath.Join(t.TempDir(), "huby.log")
	require.NoError(t, log.InitLogging(log.Options{Level: log.LogLevelNotice, File: path}))
	reportFailure(&buf, "sum", failure)
	assert.Equal(t, "Failed to sum: potato\n", buf.String())
	require.NoError(t, log.InitLogging(log.DefaultOptions()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Failed to sum: potato")
}
