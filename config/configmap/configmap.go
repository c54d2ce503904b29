// Package configmap provides an abstraction for reading and writing config
package configmap

import (
	"os"
	"sort"
	"strings"
)

// Getter provides an interface to get config items
type Getter interface {
	// Get should get an item with the key passed in and return
	// the value. If the item is found then it should return true,
	// otherwise false.
	Get(key string) (value string, ok bool)
}

// Map layers multiple Getter interfaces, so a value can come from
// the first of several sources which has it.
type Map struct {
	getters []Getter
}

// New returns an empty Map
func New() *Map {
	return &Map{}
}

// AddGetter appends a getter onto the end of the getters.
//
// Getters added first take priority.
func (c *Map) AddGetter(getter Getter) *Map {
	c.getters = append(c.getters, getter)
	return c
}

// Get gets an item with the key passed in and return the value from
// the first getter. If the item is found then it returns true,
// otherwise false.
func (c *Map) Get(key string) (value string, ok bool) {
	for _, do := range c.getters {
		value, ok = do.Get(key)
		if ok {
			return value, ok
		}
	}
	return "", false
}

// Simple is a Getter backed by a map, used for collecting values
type Simple map[string]string

// Get the value
func (c Simple) Get(key string) (value string, ok bool) {
	value, ok = c[key]
	return value, ok
}

// Set the value
func (c Simple) Set(key, value string) {
	c[key] = value
}

// String the map value as key='value' pairs with sorted keys, quotes
// escaped by doubling them.
func (c Simple) String() string {
	var ks = make([]string, 0, len(c))
	for k := range c {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	var out strings.Builder
	for _, k := range ks {
		if out.Len() > 0 {
			out.WriteRune(',')
		}
		out.WriteString(k)
		out.WriteRune('=')
		out.WriteRune('\'')
		for _, ch := range c[k] {
			out.WriteRune(ch)
			// Escape ' as ''
			if ch == '\'' {
				out.WriteRune(ch)
			}
		}
		out.WriteRune('\'')
	}
	return out.String()
}

// Env is a Getter which reads config items from environment
// variables named Prefix + the upper cased key, so "log_level" with
// prefix "HUBY_" is read from HUBY_LOG_LEVEL.
type Env struct {
	Prefix string
}

// Key returns the environment variable name for key
func (e Env) Key(key string) string {
	key = strings.ReplaceAll(key, "-", "_")
	return e.Prefix + strings.ToUpper(key)
}

// Get the value from the environment
func (e Env) Get(key string) (value string, ok bool) {
	return os.LookupEnv(e.Key(key))
}
