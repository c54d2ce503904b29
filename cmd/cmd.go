// Package cmd implements the huby command
//
// It is in a sub package so it's internals can be re-used elsewhere
package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/huby-dev/huby/config"
	"github.com/huby-dev/huby/config/configflags"
	"github.com/huby-dev/huby/lib/exitcode"
	"github.com/huby-dev/huby/log"
	"github.com/huby-dev/huby/size"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Globals
var (
	// Version of huby, set with -ldflags at build time
	Version = "v0.1.0-DEV"

	// Opt are the global options from the flags, environment and
	// config file
	Opt = config.DefaultOptions()

	// Errors
	errorNotEnoughArguments = errors.New("not enough arguments")
	errorTooManyArguments   = errors.New("too many arguments")
)

// configError marks an error found setting up the options
type configError struct {
	err error
}

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }
func (e configError) Cause() error  { return e.err }

// Root is the main huby command
var Root = &cobra.Command{
	Use:   "huby",
	Short: "Parse, format and do sums with human readable byte sizes",
	Long: `
Huby reads sizes like "1.5GB", "42 KiB" or "100" and prints them as
exact byte counts or as sizes in the best unit.

Decimal units (KB, MB, GB, TB, PB, EB) are powers of 1000 and binary
units (KiB, MiB, GiB, TiB, PiB, EiB) are powers of 1024. Unit names
are not case sensitive, so "1gb" is the same as "1GB".

Sizes are printed with --family units. Sizes which can be printed
exactly always are, and the rest are rounded to --precision digits.

All the flags can be set in the environment, e.g. HUBY_FAMILY=binary,
or in a config file, e.g. "family: binary" in huby.yaml.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(command *cobra.Command, args []string) error {
		return initConfig(command.Flags())
	},
}

func init() {
	configflags.AddFlags(Root.PersistentFlags(), &Opt)
}

// Formatter returns the size.Formatter configured by the options
func Formatter() size.Formatter {
	return Opt.Formatter()
}

// ShowVersion prints the version to w
func ShowVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "huby %s\n", Version)
	_, _ = fmt.Fprintf(w, "- os/type: %s\n", runtime.GOOS)
	_, _ = fmt.Fprintf(w, "- os/arch: %s\n", runtime.GOARCH)
	_, _ = fmt.Fprintf(w, "- go/version: %s\n", runtime.Version())
}

// initConfig is run by cobra after parsing the flags
func initConfig(flagSet *pflag.FlagSet) error {
	// Fill in anything not set on the command line from the config file
	err := config.Load(configflags.ConfigPath, flagSet, &Opt)
	if err != nil {
		return configError{err}
	}

	// Finish parsing any command line flags
	err = configflags.SetFlags(flagSet, &Opt)
	if err != nil {
		return configError{err}
	}

	// Start the logger
	err = log.InitLogging(Opt.LogOptions())
	if err != nil {
		return configError{err}
	}

	// Write the args for debug purposes
	log.Debugf("huby", "Version %q starting with parameters %q", Version, os.Args)
	if dump, err := Opt.Dump(); err == nil {
		log.Debugf("huby", "Using options %v", dump)
	}
	return nil
}

// Run the function, logging any error and exiting with the
// appropriate exit code if it failed
func Run(command *cobra.Command, f func() error) {
	err := f()
	if err != nil {
		reportFailure(os.Stderr, command.Name(), err)
		resolveExitCode(err)
	}
}

// reportFailure logs err. If the log is going to a file it is written
// to w too so the user still sees it.
func reportFailure(w io.Writer, name string, err error) {
	log.Errorf(nil, "Failed to %s: %v", name, err)
	if log.Redirected() {
		_, _ = fmt.Fprintf(w, "Failed to %s: %v\n", name, err)
	}
}

// CheckArgs checks there are enough arguments and prints a message if not
func CheckArgs(MinArgs, MaxArgs int, command *cobra.Command, args []string) {
	if len(args) < MinArgs {
		_ = command.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "Command %s needs %d arguments minimum: you provided %d non flag arguments: %q\n", command.Name(), MinArgs, len(args), args)
		resolveExitCode(errorNotEnoughArguments)
	} else if MaxArgs >= 0 && len(args) > MaxArgs {
		_ = command.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "Command %s needs %d arguments maximum: you provided %d non flag arguments: %q\n", command.Name(), MaxArgs, len(args), args)
		resolveExitCode(errorTooManyArguments)
	}
}

// ParseArgs parses each of args as a size
func ParseArgs(args []string) (size.List, error) {
	sizes := make(size.List, 0, len(args))
	for _, arg := range args {
		b, err := size.Parse(arg)
		if err != nil {
			return nil, err
		}
		log.Debugf(arg, "parsed as %v bytes", log.LogValue("bytes", b.Bytes()))
		sizes = append(sizes, b)
	}
	return sizes, nil
}

// ExitCode returns the exit code huby should use for err
func ExitCode(err error) int {
	var (
		parseErr *size.ParseError
		cfgErr   configError
	)
	switch {
	case err == nil:
		return exitcode.Success
	case errors.As(err, &cfgErr):
		return exitcode.ConfigError
	case errors.Is(err, errorNotEnoughArguments), errors.Is(err, errorTooManyArguments):
		return exitcode.UsageError
	case errors.Is(err, size.ErrOverflow), errors.Is(err, size.ErrUnderflow):
		return exitcode.OutOfRange
	case errors.As(err, &parseErr),
		errors.Is(err, size.ErrInvalidValue),
		errors.Is(err, size.ErrInvalidFormat),
		errors.Is(err, size.ErrNoNumber),
		errors.Is(err, size.ErrUnknownUnit):
		return exitcode.InvalidSize
	}
	return exitcode.UncategorizedError
}

func resolveExitCode(err error) {
	os.Exit(ExitCode(err))
}

// Main runs huby interpreting flags and commands out of os.Args
func Main() {
	err := Root.Execute()
	if err != nil {
		log.Errorf(nil, "Fatal error: %v", err)
		if _, isConfig := err.(configError); isConfig {
			resolveExitCode(err)
		}
		os.Exit(exitcode.UsageError)
	}
}
