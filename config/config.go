// Package config reads huby's options from the config file.
//
// The options can be set, from highest to lowest priority, by command
// line flags, HUBY_* environment variables, the config file and
// finally the defaults from DefaultOptions.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huby-dev/huby/config/configmap"
	"github.com/huby-dev/huby/config/configstruct"
	"github.com/huby-dev/huby/config/flags"
	"github.com/huby-dev/huby/log"
	"github.com/huby-dev/huby/size"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options are the settings shared by all commands
type Options struct {
	Family            size.Family   `config:"family"`
	Precision         int           `config:"precision"`
	LogLevel          log.LogLevel  `config:"log_level"`
	LogFile           string        `config:"log_file"`
	LogFileMaxSize    size.ByteSize `config:"log_file_max_size"`
	LogFileMaxBackups int           `config:"log_file_max_backups"`
	UseJSONLog        bool          `config:"use_json_log"`
}

// DefaultOptions returns the defaults
func DefaultOptions() Options {
	return Options{
		Family:    size.DefaultFormatter.Family,
		Precision: size.DefaultFormatter.Precision,
		LogLevel:  log.LogLevelNotice,
	}
}

// Check the options are consistent
func (o *Options) Check() error {
	if o.Precision < 0 || o.Precision > size.MaxPrecision {
		return errors.Errorf("precision %d out of range: must be 0..%d", o.Precision, size.MaxPrecision)
	}
	if o.Family != size.Decimal && o.Family != size.Binary {
		return errors.Errorf("unknown family %v", o.Family)
	}
	return nil
}

// Formatter returns the size.Formatter the options describe
func (o *Options) Formatter() size.Formatter {
	return size.Formatter{
		Family:    o.Family,
		Precision: o.Precision,
	}
}

// LogOptions returns the options for log.InitLogging
func (o *Options) LogOptions() log.Options {
	return log.Options{
		Level:      o.LogLevel,
		File:       o.LogFile,
		MaxSize:    o.LogFileMaxSize,
		MaxBackups: o.LogFileMaxBackups,
		UseJSONLog: o.UseJSONLog,
	}
}

// Dump returns the options as config names and values
func (o *Options) Dump() (configmap.Simple, error) {
	items, err := configstruct.Items(o)
	if err != nil {
		return nil, err
	}
	out := configmap.Simple{}
	for _, item := range items {
		out.Set(item.Name, fmt.Sprint(item.Value))
	}
	return out, nil
}

// DefaultPath returns the directory searched for huby.yaml,
// huby.json or huby.toml when no config file is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "huby")
}

// flagGetter is a configmap.Getter returning the values of the flags
// in flagSet which have been set, so "log_level" reads --log-level.
type flagGetter struct {
	flagSet *pflag.FlagSet
}

// Get the value of the flag for key if it has been changed
func (f flagGetter) Get(key string) (value string, ok bool) {
	if f.flagSet == nil {
		return "", false
	}
	flag := f.flagSet.Lookup(strings.ReplaceAll(key, "_", "-"))
	if flag == nil || !flag.Changed {
		return "", false
	}
	return flag.Value.String(), true
}

// Load reads the config file at path into opt then applies any
// HUBY_* environment variables on top.
//
// If path is empty the default config directory is searched and it
// isn't an error for there to be no config file there. Items whose
// flag in flagSet has been changed, either on the command line or
// from the environment, are left alone.
func Load(path string, flagSet *pflag.FlagSet, opt *Options) error {
	setFlags := flagGetter{flagSet: flagSet}
	// Sources which beat the config file, highest priority first
	overrides := configmap.New().AddGetter(setFlags).AddGetter(flags.Env)

	settings, configFile, err := readConfigFile(path)
	if err != nil {
		return err
	}
	for key := range settings {
		if _, found := overrides.Get(key); found {
			log.Debugf(nil, "Ignoring %q from config file as it is set by a flag or the environment", key)
			delete(settings, key)
		}
	}
	err = configstruct.Decode(settings, opt)
	if err != nil {
		return errors.Wrapf(err, "in config file %q", configFile)
	}

	// Environment variables which no flag has read
	items, err := configstruct.Items(opt)
	if err != nil {
		return err
	}
	env := map[string]interface{}{}
	for _, item := range items {
		if _, found := setFlags.Get(item.Name); found {
			continue
		}
		if value, found := flags.Env.Get(item.Name); found {
			env[item.Name] = value
		}
	}
	err = configstruct.Decode(env, opt)
	if err != nil {
		return errors.Wrap(err, "in environment")
	}
	return nil
}

// readConfigFile returns the settings in the config file and its name.
//
// No settings and no error are returned if path is empty and there
// is no config file in DefaultPath.
func readConfigFile(path string) (settings map[string]interface{}, configFile string, err error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir := DefaultPath()
		if dir == "" {
			return nil, "", nil
		}
		v.SetConfigName("huby")
		v.AddConfigPath(dir)
	}
	err = v.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && path == "" {
			log.Debugf(nil, "No config file found in %q", DefaultPath())
			return nil, "", nil
		}
		return nil, "", errors.Wrap(err, "failed to read config file")
	}
	log.Debugf(nil, "Using config file %q", v.ConfigFileUsed())
	return v.AllSettings(), v.ConfigFileUsed(), nil
}
