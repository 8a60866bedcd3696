package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/nk"
)

// GLFWInputAdapter feeds GLFW input into an nk.Context once per frame.
// Typed text and wheel movement arrive through callbacks between frames;
// keys and buttons are sampled when the frame starts.
type GLFWInputAdapter struct {
	window *glfw.Window
	text   []rune
	scroll nk.Vec2
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{window: window}
	window.SetCharCallback(adapter.charCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	return adapter
}

// Feed records the input collected since the last call as the input of a
// new frame. Call it after glfw.PollEvents and before the first window.
func (a *GLFWInputAdapter) Feed(ctx *nk.Context) {
	ctx.InputBegin()
	defer ctx.InputEnd()

	for _, r := range a.text {
		ctx.InputRune(r)
	}
	a.text = a.text[:0]
	if a.scroll != (nk.Vec2{}) {
		ctx.InputScroll(a.scroll)
		a.scroll = nk.Vec2{}
	}

	ctrl := a.down(glfw.KeyLeftControl) || a.down(glfw.KeyRightControl)
	shift := a.down(glfw.KeyLeftShift) || a.down(glfw.KeyRightShift)
	ctx.InputKey(nk.KeyShift, shift)
	ctx.InputKey(nk.KeyCtrl, ctrl)
	ctx.InputKey(nk.KeyDel, a.down(glfw.KeyDelete))
	ctx.InputKey(nk.KeyEnter, a.down(glfw.KeyEnter) || a.down(glfw.KeyKPEnter))
	ctx.InputKey(nk.KeyTab, a.down(glfw.KeyTab))
	ctx.InputKey(nk.KeyBackspace, a.down(glfw.KeyBackspace))
	ctx.InputKey(nk.KeyUp, a.down(glfw.KeyUp))
	ctx.InputKey(nk.KeyDown, a.down(glfw.KeyDown))
	ctx.InputKey(nk.KeyTextStart, a.down(glfw.KeyHome))
	ctx.InputKey(nk.KeyTextEnd, a.down(glfw.KeyEnd))
	ctx.InputKey(nk.KeyScrollStart, a.down(glfw.KeyHome))
	ctx.InputKey(nk.KeyScrollEnd, a.down(glfw.KeyEnd))
	ctx.InputKey(nk.KeyScrollDown, a.down(glfw.KeyPageDown))
	ctx.InputKey(nk.KeyScrollUp, a.down(glfw.KeyPageUp))

	if ctrl {
		ctx.InputKey(nk.KeyCopy, a.down(glfw.KeyC))
		ctx.InputKey(nk.KeyPaste, a.down(glfw.KeyV))
		ctx.InputKey(nk.KeyCut, a.down(glfw.KeyX))
		ctx.InputKey(nk.KeyTextUndo, a.down(glfw.KeyZ))
		ctx.InputKey(nk.KeyTextRedo, a.down(glfw.KeyR))
		ctx.InputKey(nk.KeyTextWordLeft, a.down(glfw.KeyLeft))
		ctx.InputKey(nk.KeyTextWordRight, a.down(glfw.KeyRight))
		ctx.InputKey(nk.KeyTextLineStart, a.down(glfw.KeyB))
		ctx.InputKey(nk.KeyTextLineEnd, a.down(glfw.KeyE))
		ctx.InputKey(nk.KeyTextSelectAll, a.down(glfw.KeyA))
	} else {
		ctx.InputKey(nk.KeyLeft, a.down(glfw.KeyLeft))
		ctx.InputKey(nk.KeyRight, a.down(glfw.KeyRight))
		ctx.InputKey(nk.KeyCopy, false)
		ctx.InputKey(nk.KeyPaste, false)
		ctx.InputKey(nk.KeyCut, false)
		ctx.InputKey(nk.KeyTextUndo, false)
		ctx.InputKey(nk.KeyTextRedo, false)
		ctx.InputKey(nk.KeyTextWordLeft, false)
		ctx.InputKey(nk.KeyTextWordRight, false)
		ctx.InputKey(nk.KeyTextLineStart, false)
		ctx.InputKey(nk.KeyTextLineEnd, false)
		ctx.InputKey(nk.KeyTextSelectAll, false)
	}

	x, y := a.window.GetCursorPos()
	mx, my := float32(x), float32(y)
	ctx.InputMotion(mx, my)
	for glfwButton, button := range mouseButtons {
		pressed := a.window.GetMouseButton(glfwButton) == glfw.Press
		ctx.InputButton(button, mx, my, pressed)
	}
}

var mouseButtons = map[glfw.MouseButton]nk.MouseButton{
	glfw.MouseButtonLeft:   nk.ButtonLeft,
	glfw.MouseButtonMiddle: nk.ButtonMiddle,
	glfw.MouseButtonRight:  nk.ButtonRight,
}

func (a *GLFWInputAdapter) down(key glfw.Key) bool {
	return a.window.GetKey(key) == glfw.Press
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.text = append(a.text, char)
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.scroll.X += float32(xoff)
	a.scroll.Y += float32(yoff)
}

// Clipboard is the system clipboard of a GLFW window.
type Clipboard struct {
	window *glfw.Window
}

// NewClipboard returns the clipboard of window for nk.WithClipboard.
func NewClipboard(window *glfw.Window) *Clipboard {
	return &Clipboard{window: window}
}

// Copy places text on the clipboard.
func (c *Clipboard) Copy(text string) {
	c.window.SetClipboardString(text)
}

// Paste returns the clipboard text.
func (c *Clipboard) Paste() (string, bool) {
	s := c.window.GetClipboardString()
	return s, s != ""
}
