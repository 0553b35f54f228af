package curtain

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ScrollSpeed is pixels per wheel notch. Default 40.
	ScrollSpeed float64
	// SmoothScroll eases wheel scrolling over this many seconds instead of
	// jumping. Zero jumps.
	SmoothScroll float32
	ShowFPS      bool
	// OnBack, if set, runs when Backspace is pressed.
	OnBack func()
}

// shellGame adapts a Shell to ebiten.Game.
type shellGame struct {
	shell *Shell
	cfg   RunConfig
	fps   fpsMeter
}

func (g *shellGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.cfg.OnBack != nil && inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.cfg.OnBack()
	}

	mx, my := ebiten.CursorPosition()
	g.shell.HandlePointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	if _, wy := ebiten.Wheel(); wy != 0 {
		vp := g.shell.Viewport()
		dy := -wy * g.cfg.ScrollSpeed
		if g.cfg.SmoothScroll > 0 {
			vp.ScrollTo(vp.ScrollY()+dy, g.cfg.SmoothScroll, ease.OutCubic)
		} else {
			vp.ScrollBy(dy)
		}
	}

	dt := 1 / float64(ebiten.TPS())
	if g.cfg.ShowFPS {
		g.fps.update(dt, ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	g.shell.Update(float32(dt))
	return nil
}

func (g *shellGame) Draw(screen *ebiten.Image) {
	g.shell.Draw(screen)
	if g.cfg.ShowFPS {
		x := g.cfg.Width - 100
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(100, 32)
		op.GeoM.Translate(float64(x), 0)
		op.ColorScale.Scale(0, 0, 0, 0.5)
		screen.DrawImage(ensureWhitePixel(), &op)
		ebitenutil.DebugPrintAt(screen, g.fps.text, x+4, 0)
	}
}

func (g *shellGame) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives shell until the window closes or Escape is
// pressed. The shell is closed before Run returns.
func Run(shell *Shell, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(shell.vp.Width), int(shell.vp.Height)
	}
	if cfg.ScrollSpeed <= 0 {
		cfg.ScrollSpeed = 40
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	err := ebiten.RunGame(&shellGame{shell: shell, cfg: cfg})
	shell.Close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
