package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/chazu/skein/pkg/config"
	"github.com/chazu/skein/pkg/graph"
	"github.com/chazu/skein/pkg/render"
	"github.com/chazu/skein/pkg/sim"
	"github.com/chazu/skein/pkg/view"
)

var version = "0.3.0"

var (
	warnColor = color.New(color.FgYellow)
	badColor  = color.New(color.FgRed)
)

var (
	castPath   string
	configPath string
	exportDir  string
)

// settleTicks is how many simulation ticks the headless exporter runs
// before rendering, enough for the default coefficients to reach a
// stable layout.
const settleTicks = 300

var rootCmd = &cobra.Command{
	Use:     "skein",
	Short:   "skein — interactive character relationship graph",
	Long:    "skein lays out a cast of characters and their relationships with a live force simulation.\nDrag nodes, pan, zoom, and export the view as a PNG.",
	Version: version,
	RunE:    runView,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "render the relationship graph to a PNG without opening a window",
	RunE:  runExport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&castPath, "cast", "", "JSON cast file (default: built-in sample cast)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "directory to write "+render.ExportFilename+" into")
	rootCmd.AddCommand(exportCmd)
}

// loadInputs resolves config and cast from flags, falling back to the
// built-in sample cast. Validation warnings are printed but never stop
// the run; the affected relationships just drop out of the edge array.
func loadInputs() (config.Config, []graph.Character, []graph.Relationship, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, nil, nil, err
		}
	}

	chars, rels := graph.SampleCast()
	if castPath != "" {
		cf, err := graph.LoadCast(castPath)
		if err != nil {
			return cfg, nil, nil, err
		}
		chars, rels = cf.Characters, cf.Relationships
	}

	for _, w := range graph.Validate(chars, rels) {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return cfg, chars, rels, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, chars, rels, err := loadInputs()
	if err != nil {
		return err
	}
	g := graph.Build(chars, rels, float64(cfg.Window.Width), float64(cfg.Window.Height))
	log.Printf("cast loaded: %d characters, %d relationships drawn", len(g.Nodes), len(g.Edges))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("skein")
	if err := ebiten.RunGame(NewApp(g, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, chars, rels, err := loadInputs()
	if err != nil {
		return err
	}
	g := graph.Build(chars, rels, float64(cfg.Window.Width), float64(cfg.Window.Height))

	engine := sim.New(cfg.SimConfig())
	for i := 0; i < settleTicks; i++ {
		engine.Step(g)
	}

	path, err := render.ExportPNG(render.Scene{Graph: g, View: view.New()}, cfg.Window.Width, cfg.Window.Height, exportDir)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		badColor.Fprintf(os.Stderr, "skein: %v\n", err)
		os.Exit(1)
	}
}
