// live2dctl is a CLI utility for inspecting Live2D characters, model motions
// and scale resolution without running the viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/Faultbox/live2d-viewer/internal/character"
	"github.com/Faultbox/live2d-viewer/internal/config"
	"github.com/Faultbox/live2d-viewer/internal/model3"
	"github.com/Faultbox/live2d-viewer/pkg/motion"
	"github.com/Faultbox/live2d-viewer/pkg/scale"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "characters", "chars":
		cmdCharacters(args)
	case "scale":
		cmdScale(args)
	case "motions", "ls":
		cmdMotions(args)
	case "pick":
		cmdPick(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`live2dctl - Live2D viewer utility

Usage:
  live2dctl <command> [options]

Commands:
  characters                               List registered characters
  scale -character <id> -width W -height H Resolve the display scale
  motions <file.model3.json>               List motion groups of a model
  pick <file.model3.json> -context <ctx>   Pick a motion (idle, motion, random)
  config init [-o file.yaml] [-force]      Write the default server config

Common options:
  -characters <file.yaml>                  Character overrides file

Examples:
  live2dctl characters
  live2dctl scale -character mao -width 1920 -height 1080
  live2dctl scale -character hiyori -width 800 -height 600 -model-width 2400 -model-height 3600
  live2dctl motions -character mao public/models/Mao/Mao.model3.json
  live2dctl pick -context motion -seed 7 -n 5 public/models/Mao/Mao.model3.json
  live2dctl config init -o config.yaml`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func loadRegistry(overrides string) *character.Registry {
	reg := character.Builtin()
	if overrides != "" {
		if err := reg.LoadFile(overrides); err != nil {
			fail("%v", err)
		}
	}
	return reg
}

func cmdCharacters(args []string) {
	fs := flag.NewFlagSet("characters", flag.ExitOnError)
	overrides := fs.String("characters", "", "Character overrides file")
	fs.Parse(args)

	reg := loadRegistry(*overrides)

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tIDLE\tTAP\tAUTO\tMODEL")
	for _, c := range reg.List() {
		auto := "-"
		if c.AutoCycle {
			auto = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.IdleGroup, c.TapMode, auto, c.ModelPath)
	}
	w.Flush()
}

func cmdScale(args []string) {
	fs := flag.NewFlagSet("scale", flag.ExitOnError)
	id := fs.String("character", scale.DefaultProfileKey, "Character id")
	width := fs.Float64("width", scale.ReferenceWidth, "Surface width")
	height := fs.Float64("height", scale.ReferenceHeight, "Surface height")
	modelWidth := fs.Float64("model-width", 0, "Model bounding box width (0 = static mode)")
	modelHeight := fs.Float64("model-height", 0, "Model bounding box height (0 = static mode)")
	fill := fs.Float64("fill", scale.DefaultFillRatio, "Fill ratio in dynamic mode")
	overrides := fs.String("characters", "", "Character overrides file")
	fs.Parse(args)

	if *width <= 0 || *height <= 0 {
		fail("surface must be positive, got %gx%g", *width, *height)
	}

	reg := loadRegistry(*overrides)
	if _, err := reg.Get(*id); err != nil {
		fail("%v", err)
	}

	opts := scale.Options{
		ModelWidth:  *modelWidth,
		ModelHeight: *modelHeight,
		FillRatio:   *fill,
		Character:   *id,
		Profiles:    reg.Profiles(),
	}
	cfg := scale.Resolve(*width, *height, opts)

	mode := "static"
	if opts.Dynamic() {
		mode = "dynamic"
	}
	fmt.Printf("Character: %s\n", *id)
	fmt.Printf("Surface:   %gx%g\n", *width, *height)
	fmt.Printf("Mode:      %s\n", mode)
	fmt.Printf("Scale:     %.4f\n", cfg.Scale)
	fmt.Printf("Range:     %.4f - %.4f\n", cfg.MinScale, cfg.MaxScale)
	fmt.Printf("Base:      %.4f\n", cfg.BaseScale)
}

// openCatalog loads a model file and builds its catalog with the character's
// metadata table.
func openCatalog(path string, c *character.Character) *motion.Catalog {
	m, err := model3.Open(path)
	if err != nil {
		fail("%v", err)
	}
	defs, ok := m.MotionDefinitions()
	if !ok {
		fail("%s: %v: %v", path, motion.ErrModelNotReady, m.Err())
	}
	return motion.BuildCatalog(defs, c.Animations)
}

func cmdMotions(args []string) {
	fs := flag.NewFlagSet("motions", flag.ExitOnError)
	id := fs.String("character", scale.DefaultProfileKey, "Character id for descriptions")
	overrides := fs.String("characters", "", "Character overrides file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: live2dctl motions [-character id] <file.model3.json>")
		os.Exit(1)
	}

	c, err := loadRegistry(*overrides).Get(*id)
	if err != nil {
		fail("%v", err)
	}
	cat := openCatalog(fs.Arg(0), c)

	fmt.Printf("Model:  %s\n", model3.ModelName(fs.Arg(0)))
	fmt.Printf("Groups: %d\n", cat.Len())
	if cat.Has(c.IdleGroup) {
		fmt.Printf("Idle:   %s (%d motions)\n", c.IdleGroup, cat.Count(c.IdleGroup))
	} else {
		fmt.Printf("Idle:   %s not in model, first non-empty group is used\n", c.IdleGroup)
	}
	fmt.Println()

	for _, g := range cat.Groups() {
		marker := ""
		if g.Name == c.IdleGroup {
			marker = " (idle)"
		}
		fmt.Printf("%s%s - %s [%d]\n", g.Name, marker, g.Description, g.Len())
		for _, clip := range g.Clips {
			fmt.Printf("  %2d  %s\n", clip.Index, clip.Name)
		}
	}
}

func cmdPick(args []string) {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	id := fs.String("character", scale.DefaultProfileKey, "Character id")
	ctxName := fs.String("context", "motion", "Selection context: idle, motion or random")
	seed := fs.Uint64("seed", 1, "Random seed")
	count := fs.Int("n", 1, "Number of picks")
	previous := fs.String("previous", "", "Previously played motion, as Group[index]")
	overrides := fs.String("characters", "", "Character overrides file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: live2dctl pick [-context ctx] [-seed n] [-n count] <file.model3.json>")
		os.Exit(1)
	}

	c, err := loadRegistry(*overrides).Get(*id)
	if err != nil {
		fail("%v", err)
	}
	cat := openCatalog(fs.Arg(0), c)
	sel := c.NewSelector(motion.NewSource(*seed))

	var last *motion.Selection
	if *previous != "" {
		p, err := motion.ParseSelection(*previous)
		if err != nil {
			fail("%v", err)
		}
		last = &p
	}

	random := strings.EqualFold(*ctxName, "random")
	var ctx motion.Context
	if !random {
		if ctx, err = motion.ParseContext(*ctxName); err != nil {
			fail("%v", err)
		}
	}

	for i := 0; i < *count; i++ {
		var pick motion.Selection
		if random {
			pick, err = sel.SelectRandom(cat)
		} else {
			pick, err = sel.SelectContextual(cat, ctx, last)
		}
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("%s - %s\n", pick, c.Animations.PlayDescription(pick.Group))
		last = &pick
	}
}

func cmdConfig(args []string) {
	if len(args) < 1 || args[0] != "init" {
		fmt.Fprintln(os.Stderr, "Usage: live2dctl config init [-o file.yaml] [-force]")
		os.Exit(1)
	}

	fs := flag.NewFlagSet("config init", flag.ExitOnError)
	out := fs.String("o", "", "Output file (default: user config directory)")
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args[1:])

	path := *out
	if path == "" {
		path = filepath.Join(config.ConfigDir(), "config.yaml")
	}
	if _, err := os.Stat(path); err == nil && !*force {
		fail("%s already exists (use -force to overwrite)", path)
	}

	cfg := config.Default()
	var err error
	if *out == "" {
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}
