// Package flags contains enhanced versions of spf13/pflag flag
// routines which will read from the environment also.
package flags

import (
	"github.com/huby-dev/huby/config/configmap"
	"github.com/huby-dev/huby/log"
	"github.com/huby-dev/huby/size"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Env is where flag values are read from, so --log-file is read from
// HUBY_LOG_FILE.
var Env = configmap.Env{Prefix: "HUBY_"}

// OptionToEnv converts a flag name into the environment variable
// which sets it
func OptionToEnv(name string) string {
	return Env.Key(name)
}

// SetValueFromEnv sets the value and default of the named flag from
// the environment if possible. The value may be overridden when the
// command line is parsed.
//
// Setting a value from the environment marks the flag as changed.
func SetValueFromEnv(flags *pflag.FlagSet, name string) error {
	envValue, found := Env.Get(name)
	if !found {
		return nil
	}
	flag := flags.Lookup(name)
	if flag == nil {
		return errors.Errorf("couldn't find flag --%q", name)
	}
	err := flags.Set(name, envValue)
	if err != nil {
		return errors.Wrapf(err, "invalid value when setting --%s from environment variable %s=%q", name, OptionToEnv(name), envValue)
	}
	log.Debugf(nil, "Setting --%s %q from environment variable %s=%q", name, flag.Value, OptionToEnv(name), envValue)
	flag.DefValue = envValue
	return nil
}

// setValueFromEnv is SetValueFromEnv for use while flags are being
// defined, where there is no way of returning the error.
func setValueFromEnv(flags *pflag.FlagSet, name string) {
	err := SetValueFromEnv(flags, name)
	if err != nil {
		log.Fatalf(nil, "%v", err)
	}
}

// StringVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.StringVarP
func StringVarP(flags *pflag.FlagSet, p *string, name, shorthand string, value string, usage string) {
	flags.StringVarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// BoolVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.BoolVarP
func BoolVarP(flags *pflag.FlagSet, p *bool, name, shorthand string, value bool, usage string) {
	flags.BoolVarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// IntVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.IntVarP
func IntVarP(flags *pflag.FlagSet, p *int, name, shorthand string, value int, usage string) {
	flags.IntVarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// CountVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.CountVarP
func CountVarP(flags *pflag.FlagSet, p *int, name, shorthand string, usage string) {
	flags.CountVarP(p, name, shorthand, usage)
	setValueFromEnv(flags, name)
}

// FVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.VarP
func FVarP(flags *pflag.FlagSet, value pflag.Value, name, shorthand, usage string) {
	flags.VarP(value, name, shorthand, usage)
	setValueFromEnv(flags, name)
}

// ByteSizeVarP defines a size flag, e.g. --max-size 1.5GiB, which can
// be set by an environment variable
func ByteSizeVarP(flags *pflag.FlagSet, p *size.ByteSize, name, shorthand string, value size.ByteSize, usage string) {
	*p = value
	FVarP(flags, p, name, shorthand, usage)
}

// FamilyVarP defines a unit family flag which can be set by an
// environment variable
func FamilyVarP(flags *pflag.FlagSet, p *size.Family, name, shorthand string, value size.Family, usage string) {
	*p = value
	FVarP(flags, p, name, shorthand, usage)
}
