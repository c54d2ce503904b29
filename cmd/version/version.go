// Package version provides the version command.
package version

import (
	"github.com/huby-dev/huby/cmd"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "version",
	Short: `Show the version number.`,
	Long: `
Show the huby version number, the go version and the build target
OS and architecture.

For example:

    $ huby version
    huby v0.1.0
    - os/type: linux
    - os/arch: amd64
    - go/version: go1.18
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 0, command, args)
		cmd.ShowVersion(command.OutOrStdout())
	},
}
