// Command gen renders widget samples with the OpenGL backend, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/nk"
	"github.com/go-theft-auto/nk/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                // filename without extension
	width  int                   // viewport width
	height int                   // viewport height
	draw   func(ctx *nk.Context) // widget rows declared inside a window
	frames int                   // frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("nk renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// The hidden window stays at 800x600, larger than every screenshot;
	// only the projection changes.
	renderer.Resize(s.width, s.height)

	// Fresh context per screenshot to avoid state leaking between captures.
	ctx := nk.New(nk.WithFont(nk.NewFaceFont(basicfont.Face7x13)))
	defer ctx.Free()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	bounds := nk.Rect{W: float32(s.width), H: float32(s.height)}
	for range frames {
		ctx.SetDelta(1.0 / 60.0)
		ctx.InputBegin()
		ctx.InputEnd()
		if ctx.Begin(s.name, bounds, nk.WindowBorder|nk.WindowTitle) {
			s.draw(ctx)
		}
		ctx.End()

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := renderer.Draw(ctx); err != nil {
			return err
		}
		ctx.Clear()
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	var (
		checked   = true
		unchecked = false
		slider    = float32(0.65)
		name      = "Hello, world!"
		notes     nk.TextEdit
		treeOpen  = nk.Maximized
		selected  = 1
		samples   = []float32{3, 5, 2, 8, 6, 9, 4, 7}
	)
	notes.Init(0)
	notes.Paste("Multi-line\nedit box\nwith three rows")

	return []screenshot{
		{
			name: "text", width: 400, height: 160,
			draw: func(ctx *nk.Context) {
				ctx.LayoutRowDynamic(20, 1)
				ctx.Label("Left aligned", nk.TextLeft)
				ctx.Label("Centered", nk.TextCentered)
				ctx.LabelColored("Colored", nk.TextRight, nk.ColorRed)
			},
		},
		{
			name: "button", width: 400, height: 120,
			draw: func(ctx *nk.Context) {
				ctx.LayoutRowDynamic(28, 3)
				ctx.Button("Default")
				ctx.ButtonSymbol(nk.SymbolTriangleRight)
				ctx.Button("Third")
			},
		},
		{
			name: "checkbox", width: 400, height: 120,
			draw: func(ctx *nk.Context) {
				ctx.LayoutRowDynamic(24, 2)
				ctx.Checkbox("Checked", &checked)
				ctx.Checkbox("Unchecked", &unchecked)
			},
		},
		{
			name: "slider", width: 400, height: 100,
			draw: func(ctx *nk.Context) {
				ctx.LayoutRowDynamic(24, 1)
				ctx.SliderFloat(0, &slider, 1, 0.05)
			},
		},
		{
			name: "edit", width: 400, height: 200,
			draw: func(ctx *nk.Context) {
				ctx.LayoutRowDynamic(28, 1)
				ctx.EditString(nk.EditField, &name, 64, nil)
				ctx.LayoutRowDynamic(90, 1)
				ctx.EditBuffer(nk.EditBox, &notes, nil)
			},
		},
		{
			name: "combo", width: 400, height: 100,
			draw: func(ctx *nk.Context) {
				ctx.LayoutRowDynamic(26, 1)
				selected = ctx.Combo([]string{"Sedan", "Truck", "Bike"}, selected, 22, nk.Vec2{X: 200, Y: 120})
			},
		},
		{
			name: "tree", width: 400, height: 200,
			draw: func(ctx *nk.Context) {
				if ctx.TreeStatePush(nk.TreeTab, "Vehicles", &treeOpen) {
					ctx.LayoutRowDynamic(20, 1)
					ctx.Label("Sedan", nk.TextLeft)
					ctx.Label("Truck", nk.TextLeft)
					ctx.TreePop()
				}
				ctx.TreePush(nk.TreeNode, "Collapsed", nk.Minimized, 0)
			},
		},
		{
			name: "chart", width: 400, height: 180,
			draw: func(ctx *nk.Context) {
				ctx.LayoutRowDynamic(60, 1)
				ctx.Plot(nk.ChartLines, samples)
				ctx.Plot(nk.ChartColumn, samples)
			},
		},
		{
			name: "group", width: 400, height: 220,
			draw: func(ctx *nk.Context) {
				ctx.LayoutRowDynamic(150, 2)
				for _, title := range []string{"Left", "Right"} {
					if ctx.GroupBegin(title, nk.WindowBorder|nk.WindowTitle) {
						ctx.LayoutRowDynamic(20, 1)
						for i := range 8 {
							ctx.Label(fmt.Sprintf("%s row %d", title, i), nk.TextLeft)
						}
						ctx.GroupEnd()
					}
				}
			},
		},
		{
			name: "menubar", width: 400, height: 120,
			draw: func(ctx *nk.Context) {
				ctx.MenubarBegin()
				ctx.LayoutRowStatic(20, 60, 3)
				for _, m := range []string{"File", "Edit", "View"} {
					if ctx.MenuBeginLabel(m, nk.TextCentered, nk.Vec2{X: 120, Y: 100}) {
						ctx.MenuEnd()
					}
				}
				ctx.MenubarEnd()
			},
		},
	}
}
