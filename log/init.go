package log

import (
	"io"
	"os"

	"github.com/huby-dev/huby/size"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options contains options for controlling the logging
type Options struct {
	Level      LogLevel      // Only log messages at this level or more severe
	File       string        // Log everything to this file
	MaxSize    size.ByteSize // Rotate the log file at this size, 0 for never
	MaxBackups int           // Max number of rotated log files to keep
	UseJSONLog bool          // Log as JSON
}

// DefaultOptions returns the logging defaults
func DefaultOptions() Options {
	return Options{
		Level: LogLevelNotice,
	}
}

// Opt is the options in use by the logger
var Opt = DefaultOptions()

// file is the currently open log file if any
var file io.Closer

// InitLogging starts the logging as per the options passed in.
//
// It may be called again to change the options, in which case any
// previously opened log file is closed.
func InitLogging(opt Options) error {
	var w io.Writer = os.Stderr
	var newFile io.Closer
	if opt.File != "" {
		if opt.MaxSize == 0 {
			// No log rotation - just open the file as normal
			f, err := os.OpenFile(opt.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0640)
			if err != nil {
				return errors.Wrap(err, "failed to open log file")
			}
			w, newFile = f, f
		} else {
			f := &lumberjack.Logger{
				Filename:   opt.File,
				MaxSize:    maxSizeMiB(opt.MaxSize),
				MaxBackups: opt.MaxBackups,
				LocalTime:  true,
			}
			w, newFile = f, f
		}
	}
	if file != nil {
		_ = file.Close()
	}
	file = newFile
	Logger.SetOutput(w)
	if opt.UseJSONLog {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}
	Opt = opt
	return nil
}

// maxSizeMiB converts the size to the whole MiB lumberjack wants,
// rounding up with a minimum of 1.
func maxSizeMiB(maxSize size.ByteSize) int {
	mib := maxSize / size.MiB
	if maxSize%size.MiB != 0 || mib == 0 {
		mib++
	}
	return int(mib)
}

// Redirected returns true if the log has been redirected from stderr
func Redirected() bool {
	return Opt.File != ""
}
