package configflags

import (
	"testing"

	"github.com/huby-dev/huby/config"
	"github.com/huby-dev/huby/log"
	"github.com/huby-dev/huby/size"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*pflag.FlagSet, *config.Options) {
	Reset()
	t.Cleanup(Reset)
	opt := config.DefaultOptions()
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flagSet, &opt)
	require.NoError(t, flagSet.Parse(args))
	return flagSet, &opt
}

func TestAddFlags(t *testing.T) {
	flagSet, opt := parse(t,
		"--family", "binary",
		"--precision", "4",
		"--config", "/etc/huby.yaml",
		"--log-file", "/tmp/huby.log",
		"--log-file-max-size", "10MiB",
		"--log-file-max-backups", "3",
		"--use-json-log",
	)
	require.NoError(t, SetFlags(flagSet, opt))
	assert.Equal(t, "/etc/huby.yaml", ConfigPath)
	assert.Equal(t, config.Options{
		Family:            size.Binary,
		Precision:         4,
		LogLevel:          log.LogLevelNotice,
		LogFile:           "/tmp/huby.log",
		LogFileMaxSize:    10 * size.MiB,
		LogFileMaxBackups: 3,
		UseJSONLog:        true,
	}, *opt)
}

func TestSetFlagsLogLevel(t *testing.T) {
	for _, test := range []struct {
		args []string
		want log.LogLevel
		err  string
	}{
		{nil, log.LogLevelNotice, ""},
		{[]string{"-v"}, log.LogLevelInfo, ""},
		{[]string{"-vv"}, log.LogLevelDebug, ""},
		{[]string{"-q"}, log.LogLevelError, ""},
		{[]string{"--log-level", "debug"}, log.LogLevelDebug, ""},
		{[]string{"-v", "-q"}, 0, "can't set -v and -q"},
		{[]string{"-v", "--log-level", "INFO"}, 0, "can't set -v and --log-level"},
		{[]string{"-q", "--log-level", "INFO"}, 0, "can't set -q and --log-level"},
		{[]string{"--precision", "10"}, 0, "precision 10 out of range: must be 0..9"},
	} {
		flagSet, opt := parse(t, test.args...)
		err := SetFlags(flagSet, opt)
		if test.err != "" {
			assert.EqualError(t, err, test.err, test.args)
			continue
		}
		require.NoError(t, err, test.args)
		assert.Equal(t, test.want, opt.LogLevel, test.args)
	}
}

func TestEnvironmentFlags(t *testing.T) {
	t.Setenv("HUBY_FAMILY", "binary")
	t.Setenv("HUBY_LOG_FILE_MAX_SIZE", "1GB")
	flagSet, opt := parse(t, "--log-file-max-size", "5MB")
	require.NoError(t, SetFlags(flagSet, opt))
	assert.Equal(t, size.Binary, opt.Family)
	assert.Equal(t, 5*size.MB, opt.LogFileMaxSize)
	assert.True(t, flagSet.Lookup("family").Changed)
}
