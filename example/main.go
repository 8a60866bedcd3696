// Example opens a GLFW window and draws a few nk windows with the OpenGL
// backend:
//
//	go run ./example/                      # default style
//	go run ./example/ -theme dark.yaml     # style from a YAML theme
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/nk"
	"github.com/go-theft-auto/nk/backend/opengl"
)

const (
	windowWidth  = 1024
	windowHeight = 720
	windowTitle  = "nk example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	themePath := flag.String("theme", "", "YAML theme file")
	flag.Parse()
	if err := run(*themePath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(themePath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("nk renderer: %w", err)
	}
	defer renderer.Delete()

	opts := []nk.Option{
		nk.WithFont(nk.NewFaceFont(basicfont.Face7x13)),
		nk.WithClipboard(opengl.NewClipboard(window)),
		nk.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
		nk.WithStrict(false),
	}
	if themePath != "" {
		theme, err := nk.LoadTheme(themePath)
		if err != nil {
			return err
		}
		opts = append(opts, nk.WithTheme(theme))
	}
	ctx := nk.New(opts...)
	defer ctx.Free()

	input := opengl.NewGLFWInputAdapter(window)
	demo := newDemo()
	last := glfw.GetTime()

	for !window.ShouldClose() {
		glfw.PollEvents()
		now := glfw.GetTime()
		ctx.SetDelta(float32(now - last))
		last = now
		input.Feed(ctx)

		demo.frame(ctx)

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := renderer.Draw(ctx); err != nil {
			return fmt.Errorf("nk render: %w", err)
		}
		ctx.Clear()

		window.SwapBuffers()
	}
	return nil
}

type demo struct {
	clicks   int
	slider   float32
	check    bool
	selected int
	name     string
	notes    nk.TextEdit
	tab      nk.CollapseState
	history  []float32
}

func newDemo() *demo {
	d := &demo{slider: 0.5, name: "player", tab: nk.Maximized}
	d.notes.Init(0)
	return d
}

func (d *demo) frame(ctx *nk.Context) {
	flags := nk.WindowBorder | nk.WindowMovable | nk.WindowScalable |
		nk.WindowMinimizable | nk.WindowTitle
	if ctx.Begin("Demo", nk.Rect{X: 40, Y: 40, W: 360, H: 520}, flags) {
		ctx.MenubarBegin()
		ctx.LayoutRowStatic(20, 60, 2)
		if ctx.MenuBeginLabel("File", nk.TextLeft, nk.Vec2{X: 140, Y: 120}) {
			ctx.LayoutRowDynamic(22, 1)
			if ctx.MenuItemLabel("Reset", nk.TextLeft) {
				d.clicks = 0
			}
			ctx.MenuItemLabel("Quit", nk.TextLeft)
			ctx.MenuEnd()
		}
		ctx.MenubarEnd()

		ctx.LayoutRowDynamic(28, 2)
		if ctx.Button(fmt.Sprintf("Click me (%d)", d.clicks)) {
			d.clicks++
			d.history = append(d.history, float32(d.clicks%7))
		}
		ctx.Checkbox("Enabled", &d.check)

		ctx.LayoutRowDynamic(24, 1)
		ctx.Label(fmt.Sprintf("Slider: %.2f", d.slider), nk.TextLeft)
		ctx.SliderFloat(0, &d.slider, 1, 0.01)

		d.selected = ctx.Combo([]string{"Sedan", "Truck", "Bike"}, d.selected, 22, nk.Vec2{X: 200, Y: 200})
		ctx.EditString(nk.EditField, &d.name, 32, nk.FilterASCII)

		if ctx.TreeStatePush(nk.TreeTab, "History", &d.tab) {
			ctx.LayoutRowDynamic(80, 1)
			if len(d.history) > 0 {
				ctx.Plot(nk.ChartColumn, d.history)
			}
			ctx.TreePop()
		}

		ctx.LayoutRowDynamic(120, 1)
		if ctx.GroupBegin("Notes", nk.WindowBorder) {
			ctx.LayoutRowDynamic(100, 1)
			ctx.EditBuffer(nk.EditBox, &d.notes, nil)
			ctx.GroupEnd()
		}
		if ctx.ContextualBegin(0, nk.Vec2{X: 120, Y: 80}, ctx.WindowGetBounds()) {
			ctx.LayoutRowDynamic(22, 1)
			if ctx.ContextualItemLabel("Clear history", nk.TextLeft) {
				d.history = d.history[:0]
			}
			ctx.ContextualEnd()
		}
	}
	ctx.End()
}
