// Package parse provides the parse command.
package parse

import (
	"fmt"
	"io"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/huby-dev/huby/cmd"
	"github.com/huby-dev/huby/config/flags"
	"github.com/spf13/cobra"
)

var (
	comma = false
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.BoolVarP(cmdFlags, &comma, "comma", "", comma, "Group the digits of the byte counts with commas")
}

var commandDefinition = &cobra.Command{
	Use:   "parse SIZE...",
	Short: `Print the number of bytes in each size.`,
	Long: `
Parse each size and print the exact number of bytes it is, one per
line. Fractional sizes are rounded to the nearest byte, halves
rounding up.

    $ huby parse 1.5GB 1.5GiB 42.42KB
    1500000000
    1610612736
    42420

Use --comma to make big numbers easier to read.

    $ huby parse --comma 1.5GiB
    1,610,612,736
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(1, -1, command, args)
		cmd.Run(command, func() error {
			return parseSizes(command.OutOrStdout(), args)
		})
	},
}

func parseSizes(w io.Writer, args []string) error {
	sizes, err := cmd.ParseArgs(args)
	if err != nil {
		return err
	}
	for _, b := range sizes {
		if comma {
			_, err = fmt.Fprintln(w, humanize.BigComma(new(big.Int).SetUint64(b.Bytes())))
		} else {
			_, err = fmt.Fprintln(w, b.Bytes())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
