package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/morphgrid/dfs"
	"github.com/katalvlaran/morphgrid/maskio"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Flag names shared between the command tree and config resolution.
const (
	flagThreshold = "threshold"
	flagChannel   = "channel"
	flagInvert    = "invert"
	flagRootLeaf  = "root-leaf"
	flagJobs      = "jobs"
	flagFormat    = "format"
)

// Config holds the settings shared by all commands.
//
// Example file:
//
//	threshold = 100
//	channel   = "luma"
//	invert    = true
//	jobs      = 4
//	root_leaf = false
//	format    = "png"
type Config struct {
	Threshold uint8  `toml:"threshold"` // binarization threshold
	Channel   string `toml:"channel"`   // "luma" or "alpha"
	Invert    bool   `toml:"invert"`    // dark pixels are foreground
	Jobs      int    `toml:"jobs"`      // concurrent files in skeletonize
	RootLeaf  bool   `toml:"root_leaf"` // report traversal roots as leaves
	Format    string `toml:"format"`    // output image format
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Threshold: maskio.DefaultThreshold,
		Channel:   maskio.Luma.String(),
		Invert:    false,
		Jobs:      4,
		RootLeaf:  false,
		Format:    maskio.FormatPNG.String(),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// Keys not present in the file keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config: %s: unknown key(s) %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks every field, reporting the first invalid one.
func (cfg Config) Validate() error {
	if cfg.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalidConfig, cfg.Jobs)
	}
	if _, err := maskio.ParseChannel(cfg.Channel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := maskio.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// maskOptions translates the binarization settings for maskio.
// cfg must be valid.
func (cfg Config) maskOptions() []maskio.Option {
	ch, _ := maskio.ParseChannel(cfg.Channel)
	opts := []maskio.Option{maskio.WithThreshold(cfg.Threshold), maskio.WithChannel(ch)}
	if cfg.Invert {
		opts = append(opts, maskio.WithInvert())
	}

	return opts
}

// dfsOptions translates the traversal settings for dfs and gridgraph.
func (cfg Config) dfsOptions() []dfs.Option {
	if cfg.RootLeaf {
		return []dfs.Option{dfs.WithRootLeaf()}
	}

	return nil
}

// format returns the output format. cfg must be valid.
func (cfg Config) format() maskio.Format {
	f, _ := maskio.ParseFormat(cfg.Format)
	return f
}

// resolveConfig builds c.cfg from defaults, the --config file and the
// flags explicitly set on cmd, then validates it.
func (c *CLI) resolveConfig(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if c.cfgPath != "" {
		var err error
		if cfg, err = LoadConfig(c.cfgPath); err != nil {
			return err
		}
		c.Logger.Debug("loaded config", "path", c.cfgPath)
	}

	flags := cmd.Flags()
	var err error
	if flags.Changed(flagThreshold) {
		cfg.Threshold, err = flags.GetUint8(flagThreshold)
	}
	if err == nil && flags.Changed(flagChannel) {
		cfg.Channel, err = flags.GetString(flagChannel)
	}
	if err == nil && flags.Changed(flagInvert) {
		cfg.Invert, err = flags.GetBool(flagInvert)
	}
	if err == nil && flags.Changed(flagRootLeaf) {
		cfg.RootLeaf, err = flags.GetBool(flagRootLeaf)
	}
	if err == nil && flags.Changed(flagJobs) {
		cfg.Jobs, err = flags.GetInt(flagJobs)
	}
	if err == nil && flags.Changed(flagFormat) {
		cfg.Format, err = flags.GetString(flagFormat)
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}
