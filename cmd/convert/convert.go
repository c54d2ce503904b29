// Package convert provides the convert command.
package convert

import (
	"fmt"
	"io"

	"github.com/huby-dev/huby/cmd"
	"github.com/huby-dev/huby/config/flags"
	"github.com/huby-dev/huby/size"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	unit = ""
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	flags.StringVarP(cmdFlags, &unit, "unit", "u", unit, "Print the sizes in this unit, e.g. KiB, instead of the best one")
}

var commandDefinition = &cobra.Command{
	Use:   "convert SIZE...",
	Short: `Print sizes in canonical form or in a given unit.`,
	Long: `
Parse each size and print it again in the best unit from --family.

    $ huby convert "1500 KB" 1024MiB
    1.5MB
    1GiB

Use --unit to print the sizes in one unit instead.

    $ huby convert --unit KiB 2MiB 1MB
    2048KiB
    976.5625KiB
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(1, -1, command, args)
		cmd.Run(command, func() error {
			return convertSizes(command.OutOrStdout(), cmd.Formatter(), unit, args)
		})
	},
}

func convertSizes(w io.Writer, f size.Formatter, unitName string, args []string) error {
	var (
		forced size.Unit
		err    error
	)
	if unitName != "" {
		forced, err = lookupUnit(unitName)
		if err != nil {
			return err
		}
	}
	sizes, err := cmd.ParseArgs(args)
	if err != nil {
		return err
	}
	for _, b := range sizes {
		text := f.Format(b)
		if unitName != "" {
			text = f.FormatIn(b, forced)
		}
		_, err = fmt.Fprintln(w, text)
		if err != nil {
			return err
		}
	}
	return nil
}

func lookupUnit(name string) (size.Unit, error) {
	u, found := size.LookupUnit(name)
	if !found {
		return u, errors.Wrapf(size.ErrUnknownUnit, "bad --unit %q", name)
	}
	return u, nil
}
