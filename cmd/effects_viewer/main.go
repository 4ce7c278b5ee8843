// Package main provides a viewer for the page decoration effects
// (ambient leaves and gusts, creative trails and paint, theme bursts).
//
// Usage:
//
//	go run ./cmd/effects_viewer [flags]
//
// Flags:
//
//	--config <file>   Effects config (default data/config/effects.yaml)
//	--trail <name>    Override trail variant: orbit or free
//	--verbose         Enable verbose logging
//
// Controls:
//
//	Mouse move/drag   - Creative mode: trail particles / paint dots
//	Mouse click       - Creative mode (free trail): particle burst
//	C                 - Toggle creative mode
//	H                 - Toggle hidden (pauses ambient spawners)
//	1-9               - Theme burst (themes in name order)
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/mode"
	"github.com/decker502/folio/pkg/sched"
	"github.com/decker502/folio/pkg/stage"
	"github.com/decker502/folio/pkg/surface"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	configFlag  = flag.String("config", config.EffectsConfigPath, "Effects config YAML")
	trailFlag   = flag.String("trail", "", "Override trail variant (orbit or free)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("quit")

var themeKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// viewerGame implements ebiten.Game for the effects viewer
type viewerGame struct {
	cfg       *config.EffectsConfig
	scheduler *sched.Scheduler
	stage     *stage.Stage
	renderer  *stage.Renderer
	trail     *surface.ImageSurface
	paint     *surface.ImageSurface
	ctrl      *mode.Controller
	tracker   *utils.PointerTracker
	themes    []string
	hidden    bool
}

func newViewerGame(cfg *config.EffectsConfig) *viewerGame {
	g := &viewerGame{
		cfg:       cfg,
		scheduler: sched.NewScheduler(),
		stage:     stage.New(screenWidth, screenHeight),
		renderer:  stage.NewRenderer(),
		trail:     surface.NewImageSurface(screenWidth, screenHeight),
		paint:     surface.NewImageSurface(screenWidth, screenHeight),
		tracker:   utils.NewPointerTracker(utils.EbitenInput{}),
		themes:    cfg.ThemeNames(),
	}
	for name, tc := range cfg.Themes {
		if c, err := config.ParseHexColor(tc.Accent); err == nil {
			g.renderer.ThemeColors[name] = c
		}
	}
	g.ctrl = mode.NewController(mode.Options{
		Scheduler: g.scheduler,
		Host:      g.stage,
		Config:    cfg,
		Rand:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Trail:     g.trail,
		Paint:     g.paint,
	})
	g.ctrl.Start()
	return g
}

func (g *viewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.ToggleCreative(g.ctrl.CurrentMode() != mode.Creative)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hidden = !g.hidden
		g.ctrl.SetHidden(g.hidden)
	}
	for i, theme := range g.themes {
		if i >= len(themeKeys) {
			break
		}
		if inpututil.IsKeyJustPressed(themeKeys[i]) {
			n := g.ctrl.SpawnThemeBurst(theme)
			log.Printf("[Viewer] %s: %d items", theme, n)
		}
	}

	f := g.tracker.Poll()
	if f.Moved {
		g.ctrl.PointerMove(f.X, f.Y)
	}
	if f.JustPressed {
		g.ctrl.PointerDown(f.X, f.Y)
	}
	if f.JustReleased {
		g.ctrl.PointerUp()
	}
	if f.Clicked {
		g.ctrl.Click(f.X, f.Y)
	}

	g.scheduler.Advance(1000.0 / config.TicksPerSecond)
	g.stage.Advance(1.0 / config.TicksPerSecond)
	return nil
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0xf4, G: 0xf1, B: 0xea, A: 0xff})
	g.renderer.Draw(screen, g.stage)
	g.paint.DrawTo(screen)
	g.trail.DrawTo(screen)

	stats := g.ctrl.LoopStats()
	msg := fmt.Sprintf("mode: %s  hidden: %v  trail: %s\n", g.ctrl.CurrentMode(), g.hidden, stats.Trail)
	msg += fmt.Sprintf("leaves: %d  gusts: %d  falling: %d  spawners: %d\n",
		g.stage.CountKind(components.ElementLeaf),
		g.stage.CountKind(components.ElementGust),
		g.stage.CountKind(components.ElementFalling),
		g.ctrl.ActiveAmbientSpawners())
	msg += fmt.Sprintf("particles: %d  dots: %d  frames: %d\n", stats.Particles, stats.Dots, stats.Frames)
	msg += fmt.Sprintf("TPS: %.1f  FPS: %.1f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	msg += "[C] creative  [H] hidden  [1-9] theme burst  [Q] quit"
	ebitenutil.DebugPrint(screen, msg)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadEffectsConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load effects config: %v\n", err)
		os.Exit(1)
	}
	if *trailFlag != "" {
		if *trailFlag != config.TrailOrbit && *trailFlag != config.TrailFree {
			fmt.Fprintf(os.Stderr, "Unknown trail %q (want orbit or free)\n", *trailFlag)
			os.Exit(1)
		}
		cfg.Creative.Trail = *trailFlag
	}

	g := newViewerGame(cfg)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("folio effects viewer")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
	g.ctrl.Stop()
}
