// Package compare provides the compare command.
package compare

import (
	"fmt"
	"io"

	"github.com/huby-dev/huby/cmd"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "compare SIZE SIZE",
	Short: `Compare two sizes.`,
	Long: `
Print "<" if the first size is smaller than the second, "=" if they
are the same number of bytes and ">" if it is bigger.

    $ huby compare 1GB 1000MB
    =
    $ huby compare 1GB 1GiB
    <
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(2, 2, command, args)
		cmd.Run(command, func() error {
			return compareSizes(command.OutOrStdout(), args[0], args[1])
		})
	},
}

var cmpToString = map[int]string{
	-1: "<",
	0:  "=",
	1:  ">",
}

func compareSizes(w io.Writer, a, b string) error {
	sizes, err := cmd.ParseArgs([]string{a, b})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, cmpToString[sizes[0].Cmp(sizes[1])])
	return err
}
