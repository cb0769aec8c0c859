// Package cli implements the morphgrid command-line interface.
//
// The commands load images through maskio, run the thinning, dfs and
// gridgraph algorithms and report results on stdout. Diagnostics go to the
// charmbracelet/log logger (stderr), which is passed to commands through
// context.Context.
//
// # Commands
//
//   - skeletonize: thin one or more images, concurrently across files
//   - label: label 8-connected components and print a summary
//   - trace: run one depth-first traversal and print root→leaf paths
//
// # Configuration
//
// Defaults come from DefaultConfig, are overridden by a TOML file given
// with --config, and finally by flags set explicitly on the command line.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "morphgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is injected at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfgPath string
	verbose bool
	cfg     Config
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	def := DefaultConfig()
	root := &cobra.Command{
		Use:           appName,
		Short:         "Morphgrid skeletonizes and labels binary images",
		Long:          `Morphgrid thins binary images to 1-pixel-wide skeletons, labels their 8-connected components and traces centerline paths through them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := c.resolveConfig(cmd); err != nil {
				return err
			}
			c.Logger.Debug("configuration", "threshold", c.cfg.Threshold, "channel", c.cfg.Channel,
				"invert", c.cfg.Invert, "jobs", c.cfg.Jobs, "root_leaf", c.cfg.RootLeaf, "format", c.cfg.Format)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.cfgPath, "config", "", "TOML configuration file")
	pf.Uint8(flagThreshold, def.Threshold, "binarization threshold (foreground iff value >= threshold)")
	pf.String(flagChannel, def.Channel, "channel to threshold: luma or alpha")
	pf.Bool(flagInvert, def.Invert, "treat dark pixels as foreground")
	pf.Bool(flagRootLeaf, def.RootLeaf, "always report the traversal root as a leaf")

	root.AddCommand(c.skeletonizeCommand())
	root.AddCommand(c.labelCommand())
	root.AddCommand(c.traceCommand())

	return root
}
