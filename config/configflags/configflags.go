// Package configflags defines the global flags used by huby. It is
// decoupled into a separate package so it can be replaced.
package configflags

import (
	"github.com/huby-dev/huby/config"
	"github.com/huby-dev/huby/config/flags"
	"github.com/huby-dev/huby/log"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var (
	// ConfigPath is the config file given with --config
	ConfigPath string

	// these will get interpreted into the options via SetFlags() below
	verbose int
	quiet   bool
)

// AddFlags adds the global flags to flagSet, storing their values in opt
func AddFlags(flagSet *pflag.FlagSet, opt *config.Options) {
	flags.StringVarP(flagSet, &ConfigPath, "config", "", ConfigPath, "Config file (default search "+config.DefaultPath()+")")
	flags.CountVarP(flagSet, &verbose, "verbose", "v", "Print lots more stuff (repeat for more)")
	flags.BoolVarP(flagSet, &quiet, "quiet", "q", false, "Print as little stuff as possible")
	flags.FamilyVarP(flagSet, &opt.Family, "family", "", opt.Family, "Units to print sizes in: "+opt.Family.Help())
	flags.IntVarP(flagSet, &opt.Precision, "precision", "", opt.Precision, "Fractional digits for sizes which can't be printed exactly")
	flags.FVarP(flagSet, &opt.LogLevel, "log-level", "", "Log level DEBUG|INFO|NOTICE|ERROR")
	flags.StringVarP(flagSet, &opt.LogFile, "log-file", "", opt.LogFile, "Log everything to this file")
	flags.ByteSizeVarP(flagSet, &opt.LogFileMaxSize, "log-file-max-size", "", opt.LogFileMaxSize, "Rotate the log file at this size, e.g. 10MiB (0 for never)")
	flags.IntVarP(flagSet, &opt.LogFileMaxBackups, "log-file-max-backups", "", opt.LogFileMaxBackups, "Number of rotated log files to keep (0 for all)")
	flags.BoolVarP(flagSet, &opt.UseJSONLog, "use-json-log", "", opt.UseJSONLog, "Use JSON log format")
}

// SetFlags converts any flags into options which weren't straight
// forward and checks the result
func SetFlags(flagSet *pflag.FlagSet, opt *config.Options) error {
	if verbose >= 2 {
		opt.LogLevel = log.LogLevelDebug
	} else if verbose >= 1 {
		opt.LogLevel = log.LogLevelInfo
	}
	if quiet {
		if verbose > 0 {
			return errors.New("can't set -v and -q")
		}
		opt.LogLevel = log.LogLevelError
	}
	logLevelFlag := flagSet.Lookup("log-level")
	if logLevelFlag != nil && logLevelFlag.Changed {
		if verbose > 0 {
			return errors.New("can't set -v and --log-level")
		}
		if quiet {
			return errors.New("can't set -q and --log-level")
		}
	}
	return opt.Check()
}

// Reset puts the flag variables back to their zero values
func Reset() {
	ConfigPath = ""
	verbose = 0
	quiet = false
}
