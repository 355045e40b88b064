package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/crossplot/internal/config"
	"github.com/san-kum/crossplot/internal/export"
	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/table"
	"github.com/san-kum/crossplot/internal/viewport"
	"github.com/san-kum/crossplot/internal/viz"
)

var (
	configFile string
	delimiter  string
	sheet      string
	preset     string

	xCol      string
	yCol      string
	zoomArg   string
	panArg    string
	exportOut string
	sampleOut string
	width     int
	height    int
	maxRows   int
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "crossplot [file]",
		Short: "interactive crossplot explorer for delimited tables",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExplorer,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "", "field delimiter (single character, \\t for tab)")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "worksheet name for .xlsx input")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "delimiter preset ("+strings.Join(config.ListPresets(), ", ")+")")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "show table summary and headers",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "print a static crossplot",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTable,
	}
	plotCmd.Flags().StringVarP(&xCol, "x", "x", "", "x column (default first header)")
	plotCmd.Flags().StringVarP(&yCol, "y", "y", "", "y column (default second header)")
	plotCmd.Flags().StringVar(&zoomArg, "zoom", "", "zoom after fitting: fx,fy,factor")
	plotCmd.Flags().StringVar(&panArg, "pan", "", "pan after fitting: dx,dy in dots")
	plotCmd.Flags().IntVar(&width, "width", 0, "plot width in cells (default from config)")
	plotCmd.Flags().IntVar(&height, "height", 0, "plot height in cells (default from config)")

	seriesCmd := &cobra.Command{
		Use:   "series [file] [column]",
		Short: "line chart of one numeric column by row",
		Args:  cobra.ExactArgs(2),
		RunE:  plotSeries,
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "export crossplot to svg, png, pdf, json or csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPlot,
	}
	exportCmd.Flags().StringVarP(&xCol, "x", "x", "", "x column (default first header)")
	exportCmd.Flags().StringVarP(&yCol, "y", "y", "", "y column (default second header)")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "crossplot.svg", "output path; format from extension")
	exportCmd.Flags().IntVar(&maxRows, "rows", export.DefaultReportRows, "point rows listed in pdf reports")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "write the sample well-log csv",
		Args:  cobra.NoArgs,
		RunE:  writeSample,
	}
	sampleCmd.Flags().StringVarP(&sampleOut, "output", "o", "", "output path (default stdout)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "crossplot.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			log.Printf("crossplot: wrote %s", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(infoCmd, plotCmd, seriesCmd, exportCmd, sampleCmd, configCmd)
	return rootCmd
}

// resolveConfig layers defaults, config file, preset and flags in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Delimiter = p.Delimiter
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter = unescapeDelimiter(delimiter)
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Sheet = sheet
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unescapeDelimiter(s string) string {
	if s == `\t` || s == "tab" {
		return "\t"
	}
	return s
}

// loadTable reads path, or stdin when path is "-".
func loadTable(cfg *config.Config, path string) (*table.Table, error) {
	if path == "-" {
		return table.Read(os.Stdin, "stdin", cfg.Rune())
	}
	return table.Load(path, cfg.LoadOptions())
}

// selectColumns fills empty column names from the first two headers.
func selectColumns(t *table.Table, x, y string) (string, string, error) {
	if x == "" && len(t.Headers) > 0 {
		x = t.Headers[0]
	}
	if y == "" && len(t.Headers) > 1 {
		y = t.Headers[1]
	}
	if x == "" || y == "" {
		return "", "", fmt.Errorf("table has %d columns; need two to crossplot", len(t.Headers))
	}
	return x, y, nil
}

// fit projects the columns and fits a viewport around the points.
func fit(cfg *config.Config, t *table.Table, x, y string) (project.Points, *viewport.Engine, error) {
	pts, err := project.Project(t, x, y)
	if err != nil {
		return nil, nil, err
	}
	engine := viewport.NewEngine(viewport.Default)
	if _, err := engine.AutoFit(pts.XY(), cfg.PadFraction); err != nil {
		return nil, nil, fmt.Errorf("%s vs %s: %w", x, y, err)
	}
	return pts, engine, nil
}

func runExplorer(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal; logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags)
	defer log.SetOutput(os.Stderr)

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	return viz.RunApp(cfg, path)
}

func showInfo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	t, err := loadTable(cfg, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n\n", args[0], t.Summary())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCOLUMN\tNUMERIC")
	for i, h := range t.Headers {
		pts, _ := project.Project(t, h, h)
		fmt.Fprintf(w, "%d\t%s\t%d/%d\n", i+1, h, len(pts), len(t.Rows))
	}
	return w.Flush()
}

func plotTable(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	t, err := loadTable(cfg, args[0])
	if err != nil {
		return err
	}
	x, y, err := selectColumns(t, xCol, yCol)
	if err != nil {
		return err
	}
	pts, engine, err := fit(cfg, t, x, y)
	if err != nil {
		return err
	}

	opts := viz.PlotOptions{Cols: cfg.Plot.Width, Rows: cfg.Plot.Height}
	if width > 0 {
		opts.Cols = width
	}
	if height > 0 {
		opts.Rows = height
	}

	if zoomArg != "" {
		v, err := parseFloats(zoomArg, 3)
		if err != nil {
			return fmt.Errorf("invalid --zoom: %w", err)
		}
		engine.ZoomAt(v[0], v[1], v[2])
	}
	if panArg != "" {
		v, err := parseFloats(panArg, 2)
		if err != nil {
			return fmt.Errorf("invalid --pan: %w", err)
		}
		dotsW, dotsH := float64(opts.Cols*2), float64(opts.Rows*4)
		engine.PanByPixels(v[0], v[1], dotsW, dotsH, engine.Current())
	}

	view := engine.Current()
	fmt.Printf("%s vs %s  %d points  %s\n", x, y, len(pts), view)
	fmt.Println(viz.RenderPlot(pts, view, opts).String())
	return nil
}

func plotSeries(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	t, err := loadTable(cfg, args[0])
	if err != nil {
		return err
	}
	col := args[1]
	pts, err := project.Project(t, col, col)
	if err != nil {
		return err
	}
	if len(pts) == 0 {
		return fmt.Errorf("column %q has no numeric values", col)
	}

	data := make([]float64, len(pts))
	for i, p := range pts {
		data[i] = p.Y
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(cfg.Plot.Height),
		asciigraph.Width(cfg.Plot.Width),
		asciigraph.Caption(fmt.Sprintf("%s by row (%d values)", col, len(data))),
	)
	fmt.Println(graph)
	return nil
}

func exportPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	t, err := loadTable(cfg, args[0])
	if err != nil {
		return err
	}
	x, y, err := selectColumns(t, xCol, yCol)
	if err != nil {
		return err
	}
	pts, engine, err := fit(cfg, t, x, y)
	if err != nil {
		return err
	}
	view := engine.Current()
	opts := export.Options{
		Title:  fmt.Sprintf("%s vs %s", x, y),
		XLabel: x,
		YLabel: y,
		Radius: cfg.Plot.MarkerRadius,
	}

	switch ext := strings.ToLower(filepath.Ext(exportOut)); ext {
	case ".svg":
		err = os.WriteFile(exportOut, []byte(export.SVG(pts, view, opts)), 0644)
	case ".png":
		var data []byte
		data, err = export.PNG(pts, view, opts)
		if err == nil {
			err = os.WriteFile(exportOut, data, 0644)
		}
	case ".pdf":
		err = writePDF(exportOut, export.Report{
			Title:   opts.Title,
			Source:  args[0],
			Summary: t.Summary(),
			XColumn: x,
			YColumn: y,
			Points:  pts,
			View:    view,
			MaxRows: maxRows,
		})
	case ".json", ".csv":
		err = writeSelection(exportOut, ext, export.NewSelection(args[0], x, y, pts, view))
	default:
		return fmt.Errorf("unsupported export format %q (use .svg, .png, .pdf, .json or .csv)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	log.Printf("crossplot: exported %d points to %s", len(pts), exportOut)
	return nil
}

func writePDF(path string, r export.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.PDF(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSelection(path, ext string, s export.Selection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	write := export.JSON
	if ext == ".csv" {
		write = export.CSV
	}
	if err := write(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSample(cmd *cobra.Command, args []string) error {
	if sampleOut == "" {
		_, err := io.WriteString(os.Stdout, table.SampleCSV)
		return err
	}
	if err := os.WriteFile(sampleOut, []byte(table.SampleCSV), 0644); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}
	log.Printf("crossplot: wrote %s", sampleOut)
	return nil
}

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
