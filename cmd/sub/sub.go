// Package sub provides the sub command.
package sub

import (
	"fmt"
	"io"

	"github.com/huby-dev/huby/cmd"
	"github.com/huby-dev/huby/size"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "sub SIZE SIZE",
	Short: `Subtract the second size from the first.`,
	Long: `
Print the first size minus the second.

    $ huby sub 1GiB 1MB
    1.07GB

Sizes can't be negative so it is an error if the second size is
bigger than the first.
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(2, 2, command, args)
		cmd.Run(command, func() error {
			return subSizes(command.OutOrStdout(), cmd.Formatter(), args[0], args[1])
		})
	},
}

func subSizes(w io.Writer, f size.Formatter, a, b string) error {
	sizes, err := cmd.ParseArgs([]string{a, b})
	if err != nil {
		return err
	}
	diff, err := sizes[0].Sub(sizes[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, f.Format(diff))
	return err
}
