// Package sum provides the sum command.
package sum

import (
	"fmt"
	"io"

	"github.com/huby-dev/huby/cmd"
	"github.com/huby-dev/huby/config/flags"
	"github.com/huby-dev/huby/size"
	"github.com/spf13/cobra"
)

var (
	showBytes = false
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.BoolVarP(cmdFlags, &showBytes, "bytes", "b", showBytes, "Print the total as a number of bytes")
}

var commandDefinition = &cobra.Command{
	Use:   "sum SIZE...",
	Short: `Add up sizes.`,
	Long: `
Print the total of all the sizes. The sum is exact, so

    $ huby sum 1GB 500MB 1KB
    1.501GB

It is an error if the total doesn't fit in 64 bits.
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(1, -1, command, args)
		cmd.Run(command, func() error {
			return sumSizes(command.OutOrStdout(), cmd.Formatter(), args)
		})
	},
}

func sumSizes(w io.Writer, f size.Formatter, args []string) error {
	sizes, err := cmd.ParseArgs(args)
	if err != nil {
		return err
	}
	total, err := sizes.Sum()
	if err != nil {
		return err
	}
	if showBytes {
		_, err = fmt.Fprintln(w, total.Bytes())
	} else {
		_, err = fmt.Fprintln(w, f.Format(total))
	}
	return err
}
