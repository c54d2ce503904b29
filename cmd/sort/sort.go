// Package sort provides the sort command.
package sort

import (
	"fmt"
	"io"

	"github.com/huby-dev/huby/cmd"
	"github.com/huby-dev/huby/config/flags"
	"github.com/huby-dev/huby/size"
	"github.com/spf13/cobra"
)

var (
	reverse = false
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.BoolVarP(cmdFlags, &reverse, "reverse", "r", reverse, "Print the biggest size first")
}

var commandDefinition = &cobra.Command{
	Use:   "sort SIZE...",
	Short: `Print sizes smallest first.`,
	Long: `
Parse the sizes and print them in canonical form, smallest first.

    $ huby sort 1GiB 1GB 10MB
    10MB
    1GB
    1GiB

Use --reverse to print the biggest first.
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(1, -1, command, args)
		cmd.Run(command, func() error {
			return sortSizes(command.OutOrStdout(), cmd.Formatter(), args)
		})
	},
}

func sortSizes(w io.Writer, f size.Formatter, args []string) error {
	sizes, err := cmd.ParseArgs(args)
	if err != nil {
		return err
	}
	sizes.Sort()
	for i := range sizes {
		b := sizes[i]
		if reverse {
			b = sizes[len(sizes)-1-i]
		}
		_, err = fmt.Fprintln(w, f.Format(b))
		if err != nil {
			return err
		}
	}
	return nil
}
