// Package exitcode exports huby's exit status numbers.
package exitcode

const (
	// Success is returned when huby finished without error.
	Success = iota
	// UsageError is returned when there was a syntax or usage error in the arguments.
	UsageError
	// UncategorizedError is returned for any error not categorised otherwise.
	UncategorizedError
	// InvalidSize is returned when a size couldn't be parsed or was negative.
	InvalidSize
	// OutOfRange is returned when a result overflowed or underflowed.
	OutOfRange
	// ConfigError is returned when the config file or environment was bad.
	ConfigError
)
