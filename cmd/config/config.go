// Package config provides the config command.
package config

import (
	"io"

	"github.com/huby-dev/huby/cmd"
	"github.com/huby-dev/huby/config/configstruct"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "config",
	Short: `Print the options in use as a config file.`,
	Long: `
Print the options huby would use after reading the flags, the
environment and the config file. The output can be saved as
huby.yaml to make them the defaults.

    $ HUBY_FAMILY=binary huby config
    family: binary
    precision: 2
    log_level: NOTICE
    log_file: ""
    log_file_max_size: 0B
    log_file_max_backups: 0
    use_json_log: false
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 0, command, args)
		cmd.Run(command, func() error {
			return showConfig(command.OutOrStdout(), &cmd.Opt)
		})
	},
}

// showConfig writes opt as YAML in the order of the fields
func showConfig(w io.Writer, opt interface{}) error {
	items, err := configstruct.Items(opt)
	if err != nil {
		return err
	}
	out := make(yaml.MapSlice, 0, len(items))
	for _, item := range items {
		out = append(out, yaml.MapItem{Key: item.Name, Value: item.Value})
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
