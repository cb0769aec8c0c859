package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/morphgrid/mask"
	"github.com/katalvlaran/morphgrid/maskio"
	"github.com/katalvlaran/morphgrid/thinning"
)

// skeletonizeOpts holds the command-line flags for the skeletonize command.
type skeletonizeOpts struct {
	outDir string // directory receiving <name>.skeleton.<ext>
}

func (c *CLI) skeletonizeCommand() *cobra.Command {
	def := DefaultConfig()
	var opts skeletonizeOpts

	cmd := &cobra.Command{
		Use:   "skeletonize <image>...",
		Short: "Thin images to 1-pixel-wide skeletons",
		Long: `Skeletonize binarizes each input image, thins its foreground with the
Zhang-Suen algorithm and writes <name>.skeleton.<format> to the output
directory. Inputs are processed concurrently, up to --jobs at a time.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSkeletonize(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", ".", "output directory")
	cmd.Flags().StringP(flagFormat, "f", def.Format, "output format: png, bmp, tiff")
	cmd.Flags().IntP(flagJobs, "j", def.Jobs, "number of images processed concurrently")

	return cmd
}

func (c *CLI) runSkeletonize(ctx context.Context, inputs []string, opts skeletonizeOpts) error {
	logger := loggerFromContext(ctx)
	format := c.cfg.format()

	outputs, err := skeletonPaths(inputs, opts.outDir, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	prog := newProgress(logger)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Jobs)
	for i, in := range inputs {
		out := outputs[i]
		g.Go(func() error {
			return c.skeletonizeFile(ctx, logger, in, out)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Skeletonized %d image(s)", len(inputs)))
	return nil
}

// skeletonizeFile runs load → Skeletonize → save for one input.
// logger is shared by all workers; loggers built with With do not share its lock.
func (c *CLI) skeletonizeFile(ctx context.Context, logger *log.Logger, in, out string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := maskio.Load(in, c.cfg.maskOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	skel, err := skeletonize(logger, filepath.Base(in), m)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if err := maskio.Save(out, skel); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}

	logger.Info("skeletonized", "file", filepath.Base(in), "out", out, "foreground", m.Count(), "skeleton", skel.Count())
	return nil
}

// skeletonize thins m, logging every round at debug level.
func skeletonize(logger *log.Logger, name string, m *mask.Mask) (*mask.Mask, error) {
	return thinning.Skeletonize(m, thinning.WithOnRound(func(round, removed, remaining int) {
		logger.Debug("thinning round", "file", name, "round", round, "removed", removed, "remaining", remaining)
	}))
}

// skeletonPaths maps every input to <outDir>/<name>.skeleton.<ext>,
// rejecting inputs that would overwrite each other.
func skeletonPaths(inputs []string, outDir string, format maskio.Format) ([]string, error) {
	outputs := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		base := filepath.Base(in)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		out := filepath.Join(outDir, name+".skeleton"+format.Ext())
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s and %s both map to %s", prev, in, out)
		}
		seen[out] = in
		outputs[i] = out
	}

	return outputs, nil
}
