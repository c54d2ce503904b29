// Package format provides the format command.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huby-dev/huby/cmd"
	"github.com/huby-dev/huby/size"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "format BYTES...",
	Short: `Print byte counts as sizes.`,
	Long: `
Print each byte count as a size in the largest unit it is at least
one of, using the units chosen with --family.

    $ huby format 1500 1234567 1073741824
    1.5KB
    1.23MB
    1GiB

Byte counts which are a whole number of the next smaller unit are
printed exactly. Others are rounded to --precision digits.
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(1, -1, command, args)
		cmd.Run(command, func() error {
			return formatBytes(command.OutOrStdout(), cmd.Formatter(), args)
		})
	},
}

// parseBytes reads a plain decimal byte count
func parseBytes(arg string) (size.ByteSize, error) {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "-") {
		return 0, errors.Wrapf(size.ErrInvalidValue, "byte count %q can't be negative", arg)
	}
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errors.Wrapf(size.ErrOverflow, "byte count %q", arg)
		}
		return 0, errors.Wrapf(size.ErrInvalidFormat, "%q is not a byte count", arg)
	}
	return size.FromBytes(n), nil
}

func formatBytes(w io.Writer, f size.Formatter, args []string) error {
	for _, arg := range args {
		b, err := parseBytes(arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, f.Format(b))
		if err != nil {
			return err
		}
	}
	return nil
}
