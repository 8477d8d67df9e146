package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrReadBytesNotSupported is returned by providers that only supply parsed maps.
var ErrReadBytesNotSupported = ierrors.New("pflag provider does not support reading bytes")

// lowerPosflag implements a pflag command line provider with lower cased keys.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a commandline flags provider that returns a nested map[string]interface{} where the
// nesting hierarchy of keys is defined by delim. For instance, the delim "." will convert the key
// `parent.child.key: 1` to `{parent: {child: {key: 1}}}`.
//
// Flags that were not changed on the command line only contribute their default value if the key does not exist in
// the given Koanf instance yet.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		if !f.Changed && (p.ko == nil || p.ko.Exists(strings.ToLower(f.Name))) {
			return
		}

		var v interface{}
		switch f.Value.Type() {
		case "int":
			i, _ := p.flagset.GetInt(f.Name)
			v = int64(i)
		case "int64":
			v, _ = p.flagset.GetInt64(f.Name)
		case "uint64":
			i, _ := p.flagset.GetUint64(f.Name)
			v = int64(i)
		case "float64":
			v, _ = p.flagset.GetFloat64(f.Name)
		case "bool":
			v, _ = p.flagset.GetBool(f.Name)
		case "stringSlice":
			v, _ = p.flagset.GetStringSlice(f.Name)
		case "intSlice":
			v, _ = p.flagset.GetIntSlice(f.Name)
		default:
			v = f.Value.String()
		}

		mp[strings.ToLower(f.Name)] = v
	})

	return maps.Unflatten(mp, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}
