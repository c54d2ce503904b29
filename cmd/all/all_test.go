package all_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/huby-dev/huby/cmd"
	_ "github.com/huby-dev/huby/cmd/all"
	"github.com/huby-dev/huby/config"
	"github.com/huby-dev/huby/config/configflags"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes huby with args returning what it printed
func run(t *testing.T, args ...string) string {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	reset := func(flagSet *pflag.FlagSet) {
		flagSet.VisitAll(func(flag *pflag.Flag) {
			_ = flag.Value.Set(flag.DefValue)
			flag.Changed = false
		})
	}
	cmd.Opt = config.DefaultOptions()
	configflags.Reset()
	reset(cmd.Root.PersistentFlags())
	for _, command := range cmd.Root.Commands() {
		reset(command.Flags())
	}

	var buf bytes.Buffer
	cmd.Root.SetOut(&buf)
	cmd.Root.SetArgs(args)
	defer func() {
		cmd.Root.SetOut(nil)
		cmd.Root.SetArgs(nil)
	}()
	require.NoError(t, cmd.Root.Execute(), args)
	return buf.String()
}

func TestCommands(t *testing.T) {
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"parse", "1.5GB", "1.5GiB"}, "1500000000\n1610612736\n"},
		{[]string{"parse", "--comma", "1.5GiB"}, "1,610,612,736\n"},
		{[]string{"format", "1500", "1073741824"}, "1.5KB\n1GiB\n"},
		{[]string{"format", "--family", "binary", "1536"}, "1.5KiB\n"},
		{[]string{"format", "--precision", "4", "1234567"}, "1.2346MB\n"},
		{[]string{"convert", "1500 KB"}, "1.5MB\n"},
		{[]string{"convert", "-u", "KiB", "2MiB"}, "2048KiB\n"},
		{[]string{"sum", "1GB", "500MB"}, "1.5GB\n"},
		{[]string{"sum", "-b", "1KiB", "1KB"}, "2024\n"},
		{[]string{"sub", "1GB", "500MB"}, "500MB\n"},
		{[]string{"compare", "1GB", "1GiB"}, "<\n"},
		{[]string{"sort", "-r", "1GB", "1GiB", "1MB"}, "1GiB\n1GB\n1MB\n"},
	} {
		assert.Equal(t, test.want, run(t, test.args...), test.args)
	}
}

func TestFlagsDontLeak(t *testing.T) {
	assert.Equal(t, "1.5KiB\n", run(t, "format", "--family", "binary", "1536"))
	assert.Equal(t, "1.536KB\n", run(t, "format", "1536"))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huby.yaml")
	require.NoError(t, os.WriteFile(path, []byte("family: binary\nprecision: 3\n"), 0600))
	assert.Equal(t, "1.5KiB\n", run(t, "--config", path, "format", "1536"))
	// flags beat the config file
	assert.Equal(t, "1.536KB\n", run(t, "--config", path, "--family", "decimal", "format", "1536"))
}

func TestConfigCommand(t *testing.T) {
	out := run(t, "--family", "binary", "config")
	assert.Contains(t, out, "family: binary\n")
	assert.Contains(t, out, "precision: 2\n")
}

func TestVersion(t *testing.T) {
	out := run(t, "version")
	assert.Contains(t, out, "huby "+cmd.Version+"\n")
	assert.Contains(t, out, "- go/version: ")
}
