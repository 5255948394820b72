package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/kage/backend/kage"
	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/kage/core/glyph/glyphdb"
	"github.com/npillmayer/kage/engine/resolve"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the configuration of a run, taken from a config file (kage.yaml),
// environment variables KAGE_… and command line flags, in increasing order
// of precedence.
type Config struct {
	Dump    string       `mapstructure:"dump"`
	Psql    bool         `mapstructure:"psql"`
	Output  OutputConfig `mapstructure:"output"`
	Select  SelectConfig `mapstructure:"select"`
	Style   StyleConfig  `mapstructure:"style"`
	Workers int          `mapstructure:"workers"`
	Dedup   bool         `mapstructure:"dedup"`
	Trace   string       `mapstructure:"trace"`
}

// OutputConfig configures output files.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
	Size   int    `mapstructure:"size"`
}

// SelectConfig configures which glyphs to process. At most one of Pattern
// and Prefix may be set; if neither is, Preset is used.
type SelectConfig struct {
	Preset  string `mapstructure:"preset"`
	Pattern string `mapstructure:"pattern"`
	Prefix  string `mapstructure:"prefix"`
}

// StyleConfig configures the renderer.
type StyleConfig struct {
	Weight float64 `mapstructure:"weight"`
}

// config keys and the flags they are bound to
var flagKeys = map[string]string{
	"dump":           "dump",
	"psql":           "psql",
	"output.dir":     "out",
	"output.format":  "format",
	"output.size":    "size",
	"select.preset":  "preset",
	"select.pattern": "pattern",
	"select.prefix":  "prefix",
	"style.weight":   "weight",
	"workers":        "workers",
	"dedup":          "dedup",
	"trace":          "trace",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dump", "dump_newest_only.txt")
	v.SetDefault("psql", false)
	v.SetDefault("output.dir", "images/svg")
	v.SetDefault("output.format", "svg")
	v.SetDefault("output.size", kage.DefaultPNGSize)
	v.SetDefault("select.preset", "unicode")
	v.SetDefault("style.weight", kage.DefaultStyle.Weight)
	v.SetDefault("workers", 0)
	v.SetDefault("dedup", false)
	v.SetDefault("trace", "Error")
}

// LoadConfig reads the configuration. If configFile is empty, an optional
// kage.yaml in the current directory is read.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("kage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("KAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, core.WrapError(err, core.EINTERNAL, "cannot bind flag --%s", name)
				}
			}
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, core.WrapError(err, core.EINVALID, "cannot read configuration")
		}
	} else {
		tracer().Infof("configuration read from %s", v.ConfigFileUsed())
	}
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode configuration")
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (conf *Config) validate() error {
	if conf.Select.Pattern != "" && conf.Select.Prefix != "" {
		return core.Error(core.EINVALID, "select either by pattern or by prefix, not both")
	}
	if conf.Workers < 0 {
		return core.Error(core.EINVALID, "number of workers must not be negative, is %d", conf.Workers)
	}
	switch strings.ToLower(conf.Output.Format) {
	case "svg", "png":
	default:
		return core.Error(core.EINVALID, "unknown output format %q", conf.Output.Format)
	}
	return nil
}

// Selector returns the glyph selection of the configuration.
func (conf *Config) Selector() (glyphdb.Selector, error) {
	switch {
	case conf.Select.Pattern != "":
		return glyphdb.Pattern(conf.Select.Pattern)
	case conf.Select.Prefix != "":
		return glyphdb.Prefix(conf.Select.Prefix), nil
	}
	return glyphdb.Preset(conf.Select.Preset)
}

// ResolveOptions returns the options for resolving glyphs.
func (conf *Config) ResolveOptions() []resolve.Option {
	if conf.Dedup {
		return []resolve.Option{resolve.Dedup()}
	}
	return nil
}

// LoadOptions returns the options for loading the glyph dump.
func (conf *Config) LoadOptions() []glyphdb.Option {
	if conf.Psql {
		return []glyphdb.Option{glyphdb.SkipDecoration()}
	}
	return nil
}

// Renderer creates the renderer for the configured output format.
func (conf *Config) Renderer() (kage.Renderer, error) {
	return kage.NewRenderer(conf.Output.Format, kage.Style{Weight: conf.Style.Weight}, conf.Output.Size)
}

func (conf *Config) String() string {
	return fmt.Sprintf("dump=%s out=%s format=%s", conf.Dump, conf.Output.Dir, conf.Output.Format)
}
