package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/alexander-mcdowell/Appolonian-Gasket/gasket"
	"github.com/alexander-mcdowell/Appolonian-Gasket/render"
)

var (
	// Global flags
	configPath    string
	tolerance     float64
	cutoffFactor  float64
	cutoff        float64
	maxExpansions int
	logLevel      string

	// render flags
	outputPath   string
	outputFormat string
	imageSize    int
	colorSeed    uint64

	// generate flags
	listCircles bool

	config Config
	logger *slog.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gasket",
		Short: "Generate Apollonian gaskets from four tangent seed curvatures",
		Long: `Seed curvatures (a, b, c, d) must satisfy Descartes's Theorem,
(a + b + c + d)² = 2(a² + b² + c² + d²), with exactly one negative
curvature for the bounding circle. For example: gasket render -1 2 2 3`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "gasket.yaml", "YAML config file")
	pf.Float64Var(&tolerance, "tolerance", gasket.DEFAULT_TOLERANCE, "center tolerance for duplicate circles")
	pf.Float64Var(&cutoffFactor, "cutoff-factor", gasket.CUTOFF_FACTOR, "stop at this multiple of the largest seed curvature")
	pf.Float64Var(&cutoff, "cutoff", 0, "absolute curvature cutoff (overrides --cutoff-factor)")
	pf.IntVar(&maxExpansions, "max-expansions", 0, "give up after this many expansions (0 = no limit)")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	checkCmd := &cobra.Command{
		Use:   "check a b c d",
		Short: "Validate seed curvatures without generating",
		Args:  cobra.ArbitraryArgs,
		RunE:  runCheck,
	}

	generateCmd := &cobra.Command{
		Use:     "generate a b c d",
		Short:   "Generate a gasket and print a summary",
		Aliases: []string{"gen"},
		Args:    cobra.ArbitraryArgs,
		RunE:    runGenerate,
	}
	generateCmd.Flags().BoolVar(&listCircles, "list", false, "print every circle as 'curvature x y'")

	renderCmd := &cobra.Command{
		Use:   "render a b c d",
		Short: "Generate a gasket and draw it to an SVG or PNG file",
		Args:  cobra.ArbitraryArgs,
		RunE:  runRender,
	}
	rf := renderCmd.Flags()
	rf.StringVarP(&outputPath, "output", "o", "gasket.svg", "output file")
	rf.StringVar(&outputFormat, "format", "", "svg or png (default: from the output extension)")
	rf.IntVar(&imageSize, "size", render.DEFAULT_SIZE, "PNG size in pixels")
	rf.Uint64Var(&colorSeed, "color-seed", render.DEFAULT_COLOR_SEED, "seed for the random fill colors")

	rootCmd.AddCommand(checkCmd, generateCmd, renderCmd)
	return rootCmd
}

// loadConfig reads the config file and lays explicitly set flags over it.
func loadConfig(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	cfg, err := LoadConfig(configPath, flags.Changed("config"))
	if err != nil {
		return err
	}

	if flags.Changed("tolerance") {
		cfg.Tolerance = tolerance
	}
	if flags.Changed("cutoff-factor") {
		cfg.CutoffFactor = cutoffFactor
	}
	if flags.Changed("cutoff") {
		cfg.Cutoff = cutoff
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions = maxExpansions
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Lookup("size") != nil && flags.Changed("size") {
		cfg.Render.Size = imageSize
	}
	if flags.Lookup("color-seed") != nil && flags.Changed("color-seed") {
		cfg.Render.ColorSeed = colorSeed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	config = cfg
	logger = l
	gg.SetLogger(l)
	logger.Debug("configuration loaded", "config", configPath)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	seed, err := gasket.ParseSeed(args)
	if err != nil {
		return err
	}
	q, err := gasket.PlaceSeed(seed, gasket.DEFAULT_TOLERANCE)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %s is valid\n", seed)
	for _, c := range q {
		fmt.Fprintf(out, "  %s r=%g\n", c, c.Radius())
	}
	return nil
}

func generate(args []string) (*gasket.Result, error) {
	seed, err := gasket.ParseSeed(args)
	if err != nil {
		return nil, err
	}
	res, err := gasket.GenerateSeed(seed, config.GenerateOptions(logger)...)
	if errors.Is(err, gasket.ErrExpansionBudget) {
		logger.Warn("expansion budget exhausted, gasket is incomplete", "max_expansions", config.MaxExpansions)
		return res, nil
	}
	return res, err
}

func runGenerate(cmd *cobra.Command, args []string) error {
	res, err := generate(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printSummary(out, res)
	if listCircles {
		for _, r := range res.Registry.Records() {
			fmt.Fprintf(out, "%g %.12g %.12g\n", r.Curvature, r.Center.X, r.Center.Y)
		}
	}
	return nil
}

func printSummary(w io.Writer, res *gasket.Result) {
	fmt.Fprintf(w, "Appolonian Gasket: %s\n", res.Seed)
	fmt.Fprintf(w, "  cutoff:      %g\n", res.Cutoff)
	fmt.Fprintf(w, "  circles:     %d\n", res.Registry.Len())
	fmt.Fprintf(w, "  curvatures:  %d\n", len(res.Registry.Curvatures()))
	fmt.Fprintf(w, "  expansions:  %d\n", res.Stats.Expansions)
	fmt.Fprintf(w, "  duplicates:  %d\n", res.Stats.Duplicates)
	fmt.Fprintf(w, "  discarded:   %d\n", res.Stats.Discarded)
	fmt.Fprintf(w, "  regressions: %d\n", res.Stats.KeyRegressions)
}

func outputFormatFor(path, format string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	switch f := strings.ToLower(format); f {
	case "svg", "png":
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q, want svg or png", format)
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := outputFormatFor(outputPath, outputFormat)
	if err != nil {
		return err
	}
	res, err := generate(args)
	if err != nil {
		return err
	}

	opts := config.RenderOptions(logger)
	switch format {
	case "png":
		err = render.WritePNG(outputPath, res, opts)
	default:
		err = writeSVGFile(outputPath, res, opts)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d circles to %s\n", res.Registry.Len(), outputPath)
	return nil
}

func writeSVGFile(path string, res *gasket.Result, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteSVG(f, res, opts); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
