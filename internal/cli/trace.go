package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/morphgrid/dfs"
	"github.com/katalvlaran/morphgrid/mask"
	"github.com/katalvlaran/morphgrid/maskio"
)

// errNoForeground is returned by trace when no start is given and the image is empty.
var errNoForeground = errors.New("image has no foreground pixels")

// traceOpts holds the command-line flags for the trace command.
type traceOpts struct {
	start    string // "i,j"; empty means the first foreground pixel
	skeleton bool   // thin before tracing
}

func (c *CLI) traceCommand() *cobra.Command {
	var opts traceOpts

	cmd := &cobra.Command{
		Use:   "trace <image>",
		Short: "Print root-to-leaf paths of a depth-first traversal",
		Long: `Trace runs one depth-first traversal of the image's foreground from
--start (row,column; default: the first foreground pixel in row-major
order) and prints the path from the start to every leaf, one per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrace(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "start pixel as row,column")
	cmd.Flags().BoolVar(&opts.skeleton, "skeleton", false, "skeletonize before tracing")

	return cmd
}

func (c *CLI) runTrace(ctx context.Context, w io.Writer, in string, opts traceOpts) error {
	logger := loggerFromContext(ctx)

	m, err := maskio.Load(in, c.cfg.maskOptions()...)
	if err != nil {
		return err
	}
	if opts.skeleton {
		if m, err = skeletonize(logger, filepath.Base(in), m); err != nil {
			return err
		}
	}

	start, err := traceStart(m, opts.start)
	if err != nil {
		return err
	}

	res, err := dfs.DFS(m, start, c.cfg.dfsOptions()...)
	if err != nil {
		return err
	}
	logger.Debug("traversal", "start", start, "visited", res.Len(), "leaves", len(res.Leaves))

	for _, path := range res.Paths() {
		fmt.Fprintln(w, path)
	}

	return nil
}

// traceStart parses s as "i,j", or picks the first foreground pixel of m when s is empty.
func traceStart(m *mask.Mask, s string) (mask.Pixel, error) {
	if s == "" {
		fg := m.Foreground()
		if len(fg) == 0 {
			return mask.Pixel{}, errNoForeground
		}
		return fg[0], nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mask.Pixel{}, fmt.Errorf("start %q: want row,column", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return mask.Pixel{}, fmt.Errorf("start %q: row: %w", s, err)
	}
	j, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return mask.Pixel{}, fmt.Errorf("start %q: column: %w", s, err)
	}

	return mask.Pixel{I: i, J: j}, nil
}
