package main

import (
	"flag"
	"log"

	"github.com/decker502/folio/pkg/app"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	pageFlag    = flag.String("page", "landing", "Start page: landing or project")
	idFlag      = flag.String("id", "", "Project id for the project page (default search-engine)")
	dataFlag    = flag.String("data", "", "Project data: file path or http(s) URL (default embedded)")
	noSaveFlag  = flag.Bool("nosave", false, "Do not load or save user settings")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Page:       *pageFlag,
		ProjectID:  *idFlag,
		DataSource: *dataFlag,
		NoSave:     *noSaveFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer a.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
