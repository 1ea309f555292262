//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"taskdeck/internal/buildinfo"
)

// RunWindow starts a desktop window that shows the framebuffer while run drives
// the deck. It blocks until the window closes or run returns.
func RunWindow(ctx context.Context, opts Options, run func(context.Context, HAL) error) error {
	h := New(opts).(*hostHAL)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- run(ctx, h) }()

	g := &hostGame{h: h, done: done}
	ebiten.SetWindowTitle("taskdeck (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*2, h.fb.height*2)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	cancel()
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if g.exited {
		return g.err
	}
	if runErr := <-done; err == nil && !errors.Is(runErr, context.Canceled) {
		err = runErr
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte

	done   <-chan error
	exited bool
	err    error
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		g.exited = true
		g.err = err
		return ebiten.Termination
	default:
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)
	toRGBA(g.img, g.scratch)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
