package config

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

// ConfigurationError reports an override that could not be applied. It is
// never returned together with a usable Config.
type ConfigurationError struct {
	Source string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %v", e.Source, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// FlagPrefix is the flag namespace used for a category's overrides.
func FlagPrefix(cat Category) string {
	switch cat {
	case CategoryNative:
		return "xdg"
	case CategoryCompat:
		return "xwayland"
	default:
		return "unknown"
	}
}

func flagNoun(cat Category) string {
	return FlagPrefix(cat) + " window"
}

// BindFlags registers --format and every --<prefix>-{icon,tooltip,class,percentage}
// flag on fs. Parsed values are written into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Format, "format", cfg.Format, "format string using {icon}, {tooltip}, {class} and {percentage}")

	for _, cat := range Categories {
		it := cfg.item(cat)
		prefix := FlagPrefix(cat)
		noun := flagNoun(cat)

		fs.Var(&stringValue{p: &it.Icon}, prefix+"-icon", "icon for "+noun)
		fs.Var(&stringValue{p: &it.Tooltip}, prefix+"-tooltip", "tooltip for "+noun)
		fs.Var(&stringValue{p: &it.Class}, prefix+"-class", "class for "+noun)
		fs.Var(&percentageValue{p: &it.Percentage}, prefix+"-percentage", "percentage for "+noun)
	}
}

// ParseArgs applies the override flags in args on top of base. Every flag
// consumes exactly one following token; unknown flags, missing values,
// stray positional arguments and non-numeric percentages are errors.
func ParseArgs(base Config, args []string) (Config, error) {
	cfg := base.clone()

	fs := pflag.NewFlagSet("wayeyes", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return Config{}, &ConfigurationError{Source: "arguments", Err: err}
	}
	if fs.NArg() > 0 {
		return Config{}, &ConfigurationError{
			Source: "arguments",
			Err:    fmt.Errorf("unexpected argument %q", fs.Arg(0)),
		}
	}

	return cfg, nil
}

// Apply copies the override flags that were set on fs onto base. fs must
// have been populated through BindFlags; flags it carries for other
// purposes are ignored.
func Apply(base Config, fs *pflag.FlagSet) (Config, error) {
	cfg := base.clone()

	dst := pflag.NewFlagSet("apply", pflag.ContinueOnError)
	dst.SetOutput(io.Discard)
	BindFlags(dst, &cfg)

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		target := dst.Lookup(f.Name)
		if target == nil {
			return
		}
		if setErr := target.Value.Set(f.Value.String()); setErr != nil {
			err = fmt.Errorf("invalid argument %q for --%s: %w", f.Value.String(), f.Name, setErr)
		}
	})
	if err != nil {
		return Config{}, &ConfigurationError{Source: "arguments", Err: err}
	}

	return cfg, nil
}

// stringValue sets an optional string. The flag's presence is what makes
// the field non-nil, even when the value is empty.
type stringValue struct {
	p **string
}

func (v *stringValue) String() string {
	if v.p == nil {
		return ""
	}
	return deref(*v.p)
}

func (v *stringValue) Set(s string) error {
	*v.p = &s
	return nil
}

func (v *stringValue) Type() string {
	return "string"
}

// percentageValue only accepts plain decimal, unlike pflag's uint parsers
// which also take hex and octal prefixes.
type percentageValue struct {
	p *uint32
}

func (v *percentageValue) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(*v.p), 10)
}

func (v *percentageValue) Set(s string) error {
	n, err := parsePercentage(s)
	if err != nil {
		return err
	}
	*v.p = n
	return nil
}

// parsePercentage accepts a plain decimal that fits in 32 bits.
func parsePercentage(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("percentage must be a non-negative integer: %w", err)
	}
	return uint32(n), nil
}

func (v *percentageValue) Type() string {
	return "uint"
}
