// Package configstruct parses unstructured maps into structures
package configstruct

import (
	"encoding"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

var matchUpper = regexp.MustCompile("([A-Z]+)")

// camelToSnake converts CamelCase to snake_case
func camelToSnake(in string) string {
	out := matchUpper.ReplaceAllString(in, "_$1")
	out = strings.ToLower(out)
	out = strings.Trim(out, "_")
	return out
}

// StringToInterface turns in into an interface{} the same type as def
//
// Types implementing encoding.TextUnmarshaler are given the whole
// trimmed string so values like "1 GB" work. Anything else is parsed
// with fmt.Sscanln.
func StringToInterface(def interface{}, in string) (newValue interface{}, err error) {
	typ := reflect.TypeOf(def)
	if typ == nil {
		return newValue, errors.New("no type to parse into")
	}
	switch typ.Kind() {
	case reflect.String:
		// Pass strings unmodified
		return in, nil
	}
	o := reflect.New(typ)
	if u, ok := o.Interface().(encoding.TextUnmarshaler); ok {
		err = u.UnmarshalText([]byte(strings.TrimSpace(in)))
		if err != nil {
			return newValue, errors.Wrapf(err, "parsing %q as %T failed", in, def)
		}
		return o.Elem().Interface(), nil
	}
	// Otherwise parse with Sscanln
	n, err := fmt.Sscanln(in, o.Interface())
	if err != nil {
		return newValue, errors.Wrapf(err, "parsing %q as %T failed", in, def)
	}
	if n != 1 {
		return newValue, errors.New("no items parsed")
	}
	return o.Elem().Interface(), nil
}

// Item describes a single entry in the options structure
type Item struct {
	Name  string // snake_case
	Field string // CamelCase
	Num   int    // number of the field in the struct
	Value interface{}
}

// Items parses the opt struct and returns a slice of Item objects.
//
// opt must be a pointer to a struct.  The struct should have entirely
// public fields.
//
// The config_name is looked up in a struct tag called "config" or if
// not found is the field name converted from CamelCase to snake_case.
func Items(opt interface{}) (items []Item, err error) {
	def := reflect.ValueOf(opt)
	if def.Kind() != reflect.Ptr {
		return nil, errors.New("argument must be a pointer")
	}
	def = def.Elem() // indirect the pointer
	if def.Kind() != reflect.Struct {
		return nil, errors.New("argument must be a pointer to a struct")
	}
	defType := def.Type()
	for i := 0; i < def.NumField(); i++ {
		field := defType.Field(i)
		fieldName := field.Name
		configName, ok := field.Tag.Lookup("config")
		if !ok {
			configName = camelToSnake(fieldName)
		}
		items = append(items, Item{
			Name:  configName,
			Field: fieldName,
			Num:   i,
			Value: def.Field(i).Interface(),
		})
	}
	return items, nil
}

// Decode sets the fields of opt from the values in config.
//
// opt must be a pointer to a struct. The keys in config are the
// snake_case names returned by Items and are matched ignoring case.
// Values may already be of the right type, or be strings which are
// converted with StringToInterface, so a config file can say either
// "precision: 3" or "precision: '3'". An empty string leaves the
// field unset. Keys which don't name an item are an error.
func Decode(config map[string]interface{}, opt interface{}) error {
	items, err := Items(opt)
	if err != nil {
		return err
	}
	itemByName := make(map[string]Item, len(items))
	for _, item := range items {
		itemByName[strings.ToLower(item.Name)] = item
	}
	fields := make(map[string]interface{}, len(config))
	for key, value := range config {
		item, found := itemByName[strings.ToLower(key)]
		if !found {
			return errors.Errorf("unknown config item %q", key)
		}
		if in, ok := value.(string); ok {
			if in == "" {
				continue
			}
			value, err = StringToInterface(item.Value, in)
			if err != nil {
				return errors.Wrapf(err, "couldn't parse config item %q = %q as %T", item.Name, in, item.Value)
			}
		}
		fields[item.Field] = value
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      opt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to make config decoder")
	}
	err = decoder.Decode(fields)
	if err != nil {
		return errors.Wrap(err, "couldn't decode config")
	}
	return nil
}
