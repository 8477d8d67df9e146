package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
	// ErrUnsupportedParameterType is returned if a bound struct field has a type that can not be mapped to a flag.
	ErrUnsupportedParameterType = ierrors.New("unsupported parameter type")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
	// boundParameters keeps track of all parameters that were bound using the BindParameters function.
	boundParameters map[string]*BoundParameter
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config:          koanf.New("."),
		boundParameters: make(map[string]*BoundParameter),
	}
}

// Dump returns the loaded configuration as indented JSON, ignoredSettings are left out.
func (c *Configuration) Dump(ignoredSettings ...string) (string, error) {
	settings := c.config.Raw()
	for _, ignoredSetting := range ignoredSettings {
		parameter := settings
		path := strings.Split(strings.ToLower(ignoredSetting), ".")
		for level, parameterName := range path {
			if level == len(path)-1 {
				delete(parameter, parameterName)

				continue
			}

			nested, isMap := parameter[parameterName].(map[string]interface{})
			if !isMap {
				break
			}

			parameter = nested
		}
	}

	dump, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return "", ierrors.Wrap(err, "unable to marshal config")
	}

	return string(dump), nil
}

// LoadFile loads parameters from a JSON or YAML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return ierrors.Wrapf(err, "unable to load config file %s", filePath)
	}

	var parser koanf.Parser
	switch filepath.Ext(filePath) {
	case ".json":
		parser = &JSONLowerParser{}
	case ".yaml", ".yml":
		parser = &YAMLLowerParser{}
	default:
		return ierrors.Wrapf(ErrUnknownConfigFormat, "extension of %s", filePath)
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "unable to parse config file %s", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// BoundParameter stores the pointer and the type of values that were bound using the BindParameters function.
type BoundParameter struct {
	Name         string
	ShortHand    string
	Usage        string
	DefaultVal   any
	BoundPointer any
	BoundType    reflect.Type
}

// BindParameters defines a flag in the given FlagSet for every field of the struct and remembers the field, so that
// UpdateBoundParameters can write the loaded values back into it.
//
// The parameter names are determined by the names of the fields in the struct but they can be overridden by providing a
// name tag. The default value is the value of the field but it can be overridden by providing a default tag. The usage
// information is determined by the usage tag of the field.
//
// Nested structs translate to parameter names in the following way:
// --namespace.level2.level3.parameterName
func (c *Configuration) BindParameters(flagSet *flag.FlagSet, namespace string, pointerToStruct any) error {
	val := reflect.ValueOf(pointerToStruct).Elem()
	for i := range val.NumField() {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		name := typeField.Name
		if tagName, exists := typeField.Tag.Lookup("name"); exists {
			name = tagName
		} else {
			name = lowerCamelCase(name)
		}
		if namespace != "" {
			name = namespace + "." + name
		}

		if typeField.Type.Kind() == reflect.Struct {
			if err := c.BindParameters(flagSet, name, valueField.Addr().Interface()); err != nil {
				return err
			}

			continue
		}

		shortHand := typeField.Tag.Get("shorthand")
		usage := typeField.Tag.Get("usage")
		tagDefault, hasTagDefault := typeField.Tag.Lookup("default")

		var defaultValue any
		switch pointer := valueField.Addr().Interface().(type) {
		case *bool:
			value := *pointer
			if hasTagDefault {
				if _, err := fmt.Sscan(tagDefault, &value); err != nil {
					return ierrors.Wrapf(err, "invalid default value for %s", name)
				}
			}
			flagSet.BoolVarP(pointer, name, shortHand, value, usage)
			defaultValue = value
		case *time.Duration:
			value := *pointer
			if hasTagDefault {
				parsedDuration, err := time.ParseDuration(tagDefault)
				if err != nil {
					return ierrors.Wrapf(err, "invalid default value for %s", name)
				}
				value = parsedDuration
			}
			flagSet.DurationVarP(pointer, name, shortHand, value, usage)
			defaultValue = value
		case *float64:
			value := *pointer
			if hasTagDefault {
				if _, err := fmt.Sscan(tagDefault, &value); err != nil {
					return ierrors.Wrapf(err, "invalid default value for %s", name)
				}
			}
			flagSet.Float64VarP(pointer, name, shortHand, value, usage)
			defaultValue = value
		case *int:
			value := *pointer
			if hasTagDefault {
				if _, err := fmt.Sscan(tagDefault, &value); err != nil {
					return ierrors.Wrapf(err, "invalid default value for %s", name)
				}
			}
			flagSet.IntVarP(pointer, name, shortHand, value, usage)
			defaultValue = value
		case *int64:
			value := *pointer
			if hasTagDefault {
				if _, err := fmt.Sscan(tagDefault, &value); err != nil {
					return ierrors.Wrapf(err, "invalid default value for %s", name)
				}
			}
			flagSet.Int64VarP(pointer, name, shortHand, value, usage)
			defaultValue = value
		case *uint64:
			value := *pointer
			if hasTagDefault {
				if _, err := fmt.Sscan(tagDefault, &value); err != nil {
					return ierrors.Wrapf(err, "invalid default value for %s", name)
				}
			}
			flagSet.Uint64VarP(pointer, name, shortHand, value, usage)
			defaultValue = value
		case *string:
			value := *pointer
			if hasTagDefault {
				value = tagDefault
			}
			flagSet.StringVarP(pointer, name, shortHand, value, usage)
			defaultValue = value
		case *[]string:
			value := *pointer
			if hasTagDefault {
				value = strings.Split(tagDefault, ",")
			}
			flagSet.StringSliceVarP(pointer, name, shortHand, value, usage)
			defaultValue = value
		default:
			return ierrors.Wrapf(ErrUnsupportedParameterType, "%s has type %s", name, typeField.Type)
		}

		c.boundParameters[name] = &BoundParameter{
			Name:         name,
			ShortHand:    shortHand,
			Usage:        usage,
			DefaultVal:   defaultValue,
			BoundPointer: valueField.Addr().Interface(),
			BoundType:    valueField.Type(),
		}
	}

	return nil
}

// UpdateBoundParameters updates parameters that were bound using the BindParameters method with the current values in
// the configuration.
func (c *Configuration) UpdateBoundParameters() {
	for parameterName, boundParameter := range c.boundParameters {
		switch pointer := boundParameter.BoundPointer.(type) {
		case *bool:
			*pointer = c.Bool(parameterName)
		case *time.Duration:
			*pointer = c.Duration(parameterName)
		case *float64:
			*pointer = c.Float64(parameterName)
		case *int:
			*pointer = c.Int(parameterName)
		case *int64:
			*pointer = c.Int64(parameterName)
		case *uint64:
			*pointer = uint64(c.Int64(parameterName))
		case *string:
			*pointer = c.String(parameterName)
		case *[]string:
			*pointer = c.Strings(parameterName)
		}
	}
}
