package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rashika27/frameview/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output         string  // output file path (or base path for multiple outputs)
	formats        string  // comma-separated: json, html, dot, svg
	projection     string  // topology plane: xy, xz, yz
	title          string  // HTML page title
	detailed       bool    // coordinates in topology labels
	memberRadius   float64 // cylinder radius
	nodeSize       float64 // node cube edge
	endpointRadius float64 // endpoint sphere radius
	noCache        bool
	refresh        bool
}

// renderCommand creates the render command for writing scene artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a frame to scene JSON, HTML, DOT or SVG",
		Long: `Render a frame workbook to one or more artifacts:

  json  scene description (group translation, camera, primitives)
  html  interactive 3D page
  dot   Graphviz source of the topology plan view
  svg   rendered topology plan view

With one format, -o names the output file. With several, -o is a base path
and each artifact gets its format as extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := c.renderPipelineOptions(cmd, args[0], opts)
			if err := pipeline.ValidateFormats(popts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], popts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): json (default), html, dot, svg (comma-separated)")
	cmd.Flags().StringVar(&opts.projection, "projection", "", "topology projection: xy, xz, yz (default from config)")
	cmd.Flags().StringVar(&opts.title, "title", "", "HTML page title (default: input file name)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node coordinates in the topology diagram")
	cmd.Flags().Float64Var(&opts.memberRadius, "member-radius", 0, "member cylinder radius (default from config)")
	cmd.Flags().Float64Var(&opts.nodeSize, "node-size", 0, "node cube size (default from config)")
	cmd.Flags().Float64Var(&opts.endpointRadius, "endpoint-radius", 0, "endpoint sphere radius (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "decode the input again even if cached")

	return cmd
}

// renderPipelineOptions merges config defaults with the flags the user set.
func (c *CLI) renderPipelineOptions(cmd *cobra.Command, input string, opts renderOpts) pipeline.Options {
	sceneOpts := c.Config.Scene.Options()
	flags := cmd.Flags()
	if flags.Changed("member-radius") {
		sceneOpts.MemberRadius = opts.memberRadius
	}
	if flags.Changed("node-size") {
		sceneOpts.NodeSize = opts.nodeSize
	}
	if flags.Changed("endpoint-radius") {
		sceneOpts.EndpointRadius = opts.endpointRadius
	}

	projection := c.Config.Scene.Projection
	if opts.projection != "" {
		projection = opts.projection
	}

	return pipeline.Options{
		Path:       input,
		Refresh:    opts.refresh,
		Scene:      sceneOpts,
		Formats:    parseFormats(opts.formats),
		Projection: projection,
		Title:      opts.title,
		Detailed:   opts.detailed,
	}
}

func (c *CLI) runRender(ctx context.Context, input string, popts pipeline.Options, opts renderOpts) error {
	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}

	formats := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	single := len(formats) == 1
	var written []string
	for _, format := range formats {
		path := outputPath(opts.output, input, format, single)
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	prog.done("rendered", "source", input, "artifacts", len(written))

	printSuccess("Rendered %s", input)
	printStats(result.Stats.Members, result.Stats.Nodes, result.Stats.Skipped, result.CacheInfo.LoadHit && result.CacheInfo.RenderHit)
	for _, path := range written {
		printFile(path)
	}
	for _, sk := range result.Scene.Skipped {
		printWarning("Skipped member %s (%s)", sk.MemberID, sk.Reason)
	}
	if _, ok := result.Artifacts[pipeline.FormatHTML]; ok {
		printNextStep("Open in a browser", outputPath(opts.output, input, pipeline.FormatHTML, single))
	}
	return nil
}
