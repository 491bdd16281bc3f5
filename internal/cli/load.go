package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rashika27/frameview/pkg/frame"
	pkgio "github.com/rashika27/frameview/pkg/io"
	"github.com/rashika27/frameview/pkg/pipeline"
	"github.com/rashika27/frameview/pkg/viewer"
)

// loadOpts holds the command-line flags for the load command.
type loadOpts struct {
	export  string // write the decoded frame as JSON
	noCache bool
}

// loadCommand creates the load command, which decodes a workbook and
// summarizes the scene it produces without writing any artifacts.
func (c *CLI) loadCommand() *cobra.Command {
	var opts loadOpts

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a frame workbook and summarize it",
		Long: `Load a frame workbook (.xlsx with a members sheet and a nodes sheet, or a
frame JSON export) and report counts, skipped members, endpoints and bounds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLoad(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.export, "export", "", "write the decoded frame as JSON to this path")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runLoad(ctx context.Context, input string, opts loadOpts) error {
	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	popts := pipeline.Options{Path: input, Scene: c.Config.Scene.Options()}

	spinner := newSpinnerWithContext(ctx, "Loading "+input+"...")
	spinner.Start()
	f, _, hit, err := runner.LoadWithCacheInfo(ctx, popts)
	if err != nil {
		spinner.StopWithError("Failed to load " + input)
		return err
	}
	s := runner.Compose(ctx, f, popts)
	spinner.StopWithSuccess(viewer.LoadedMessage(f))

	printStats(f.MemberCount(), f.NodeCount(), len(s.Skipped), hit)
	printNewline()

	printKeyValue("Center", fmtVec(s.Bounds.Center))
	printKeyValue("Size", fmt.Sprintf("%.4g", s.Bounds.Size))
	printKeyValue("Cylinders", fmt.Sprint(len(s.Cylinders())))

	endpoints := frame.CountConnections(f.Members()).Endpoints(f.Members())
	printKeyValue("Endpoints", fmt.Sprint(len(endpoints)))
	for _, id := range endpoints {
		printDetail("%s", id)
	}

	for _, id := range f.Duplicates {
		printWarning("Duplicate node %s ignored", id)
	}
	for _, sk := range s.Skipped {
		printWarning("Skipped member %s (%s)", sk.MemberID, sk.Reason)
	}

	if opts.export != "" {
		if err := pkgio.ExportJSON(f, opts.export); err != nil {
			return err
		}
		printFile(opts.export)
	}
	return nil
}
