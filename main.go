package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/gameplay"
	"github.com/automoto/platformer/scenes"
	"github.com/automoto/platformer/shared/gameconfig"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(game *gameplay.Game) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(game, config.Debug.Hitboxes),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.IntVar(&config.Debug.StartLevel, "level", config.Debug.StartLevel, "level to start on")
	flag.BoolVar(&config.Debug.Hitboxes, "debug", config.Debug.Hitboxes, "show collision boxes (toggle with F1)")
	flag.Parse()

	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.UI.FontSize); err != nil {
		log.Fatalf("Failed to load HUD font: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12); err != nil {
		log.Fatalf("Failed to load small font: %v", err)
	}

	loader, err := leveldata.NewLoader(assets.Levels, assets.LevelsDir)
	if err != nil {
		log.Fatalf("Failed to read levels: %v", err)
	}
	// Parse everything up front so a broken level fails at startup.
	if _, err := loader.LoadAll(); err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	game, err := gameplay.NewGame(loader, gameconfig.Current(), gameplay.DefaultRegistry(), config.Debug.StartLevel)
	if err != nil {
		log.Fatalf("Failed to start level %d: %v", config.Debug.StartLevel, err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame(game)); err != nil {
		log.Fatal(err)
	}
}
