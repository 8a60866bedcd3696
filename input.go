package nk

// MouseButton represents a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
	ButtonDouble // Synthesized on the second left press within DoubleClickTime
	ButtonCount
)

// Key represents a semantic key. Platform adapters translate physical keys
// and shortcuts (Ctrl+Z, Home, ...) into these.
type Key int

const (
	KeyNone Key = iota
	KeyShift
	KeyCtrl
	KeyDel
	KeyEnter
	KeyTab
	KeyBackspace
	KeyCopy
	KeyCut
	KeyPaste
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTextInsertMode
	KeyTextReplaceMode
	KeyTextResetMode
	KeyTextLineStart
	KeyTextLineEnd
	KeyTextStart
	KeyTextEnd
	KeyTextUndo
	KeyTextRedo
	KeyTextSelectAll
	KeyTextWordLeft
	KeyTextWordRight
	KeyScrollStart
	KeyScrollEnd
	KeyScrollDown
	KeyScrollUp
	KeyCount
)

// Input limits and timing.
const (
	InputMax             = 16    // Runes of text input kept per frame
	DoubleClickTime      = 0.3   // Seconds between two presses of a double click
	DoubleClickMinTime   = 0.02  // Presses closer than this are treated as bounce
	doubleClickMaxTravel = 4.0   // Pixels the pointer may move between presses
	minScrollDelta       = 0.001 // Smaller wheel movement is ignored
)

// ButtonState is the state of one mouse button.
type ButtonState struct {
	Down       bool
	Clicked    int  // Transitions this frame
	ClickedPos Vec2 // Pointer position at the last transition
}

// MouseState is the pointer snapshot of the current frame.
type MouseState struct {
	Buttons     [ButtonCount]ButtonState
	Pos         Vec2
	Prev        Vec2 // Position at the end of the previous frame
	Delta       Vec2
	ScrollDelta Vec2

	// Pointer grabbing requested by scrollbars and sliders.
	Grab    bool
	Grabbed bool
	Ungrab  bool
}

// KeyState is the state of one key.
type KeyState struct {
	Down    bool
	Clicked int // Transitions this frame
}

// KeyboardState is the keyboard snapshot of the current frame.
type KeyboardState struct {
	Keys [KeyCount]KeyState
	Text []rune // Text typed this frame, at most InputMax runes
}

// Input holds mouse and keyboard state for one frame.
type Input struct {
	Mouse    MouseState
	Keyboard KeyboardState

	lastPress   float64
	lastPressAt Vec2
}

// begin resets per-frame transitions.
func (in *Input) begin() {
	for i := range in.Mouse.Buttons {
		in.Mouse.Buttons[i].Clicked = 0
	}
	for i := range in.Keyboard.Keys {
		in.Keyboard.Keys[i].Clicked = 0
	}
	in.Keyboard.Text = in.Keyboard.Text[:0]
	in.Mouse.ScrollDelta = Vec2{}
	in.Mouse.Prev = in.Mouse.Pos
	in.Mouse.Delta = Vec2{}
}

func (in *Input) end() {
	if in.Mouse.Grab {
		in.Mouse.Grab = false
	}
	if in.Mouse.Ungrab {
		in.Mouse.Grabbed = false
		in.Mouse.Ungrab = false
		in.Mouse.Grab = false
	}
}

func (in *Input) motion(x, y float32) {
	in.Mouse.Pos = Vec2{X: x, Y: y}
	in.Mouse.Delta = in.Mouse.Pos.Sub(in.Mouse.Prev)
}

func (in *Input) key(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	k := &in.Keyboard.Keys[key]
	if k.Down == down {
		return
	}
	k.Down = down
	k.Clicked++
}

// button records a transition and reports whether it completed a double click.
func (in *Input) button(id MouseButton, x, y float32, down bool, now float64) bool {
	if id < 0 || id >= ButtonCount {
		return false
	}
	b := &in.Mouse.Buttons[id]
	if b.Down == down {
		return false
	}
	pos := Vec2{X: x, Y: y}
	b.ClickedPos = pos
	b.Down = down
	b.Clicked++

	if id != ButtonLeft || !down {
		return false
	}
	dt := now - in.lastPress
	travel := pos.Sub(in.lastPressAt)
	in.lastPress = now
	in.lastPressAt = pos
	return dt > DoubleClickMinTime && dt < DoubleClickTime &&
		travel.X*travel.X+travel.Y*travel.Y <= doubleClickMaxTravel*doubleClickMaxTravel
}

func (in *Input) scroll(v Vec2) {
	in.Mouse.ScrollDelta = in.Mouse.ScrollDelta.Add(v)
}

func (in *Input) char(r rune) {
	if len(in.Keyboard.Text) < InputMax {
		in.Keyboard.Text = append(in.Keyboard.Text, r)
	}
}

// HasMouseClick reports a completed click (press and release) of id this frame.
func (in *Input) HasMouseClick(id MouseButton) bool {
	b := &in.Mouse.Buttons[id]
	return b.Clicked > 0 && !b.Down
}

// HasMouseClickInRect reports whether the last transition of id happened inside r.
func (in *Input) HasMouseClickInRect(id MouseButton, r Rect) bool {
	return r.Contains(in.Mouse.Buttons[id].ClickedPos)
}

// HasMouseClickDownInRect is HasMouseClickInRect restricted to the given button state.
func (in *Input) HasMouseClickDownInRect(id MouseButton, r Rect, down bool) bool {
	return in.HasMouseClickInRect(id, r) && in.Mouse.Buttons[id].Down == down
}

// IsMouseClickInRect reports a release of id inside r this frame.
func (in *Input) IsMouseClickInRect(id MouseButton, r Rect) bool {
	return in.HasMouseClickDownInRect(id, r, false) && in.Mouse.Buttons[id].Clicked > 0
}

// IsMouseClickDownInRect reports a transition to down inside r this frame.
func (in *Input) IsMouseClickDownInRect(id MouseButton, r Rect, down bool) bool {
	return in.HasMouseClickDownInRect(id, r, down) && in.Mouse.Buttons[id].Clicked > 0
}

// AnyMouseClickInRect reports a transition of any button inside r.
func (in *Input) AnyMouseClickInRect(r Rect) bool {
	for id := MouseButton(0); id < ButtonCount; id++ {
		if in.IsMouseClickInRect(id, r) {
			return true
		}
	}
	return false
}

// IsMouseHoveringRect reports whether the pointer is inside r.
func (in *Input) IsMouseHoveringRect(r Rect) bool {
	return r.Contains(in.Mouse.Pos)
}

// IsMousePrevHoveringRect reports whether the pointer was inside r last frame.
func (in *Input) IsMousePrevHoveringRect(r Rect) bool {
	return r.Contains(in.Mouse.Prev)
}

// MouseClicked reports a click of id released inside r while hovering it.
func (in *Input) MouseClicked(id MouseButton, r Rect) bool {
	return in.IsMouseHoveringRect(r) && in.IsMouseClickInRect(id, r)
}

// IsMouseDown reports whether id is held.
func (in *Input) IsMouseDown(id MouseButton) bool { return in.Mouse.Buttons[id].Down }

// IsMousePressed reports a press of id this frame.
func (in *Input) IsMousePressed(id MouseButton) bool {
	b := &in.Mouse.Buttons[id]
	return b.Down && b.Clicked > 0
}

// IsMouseReleased reports a release of id this frame.
func (in *Input) IsMouseReleased(id MouseButton) bool {
	b := &in.Mouse.Buttons[id]
	return !b.Down && b.Clicked > 0
}

// IsKeyPressed reports a press of key this frame, including a full
// press-release-press sequence within one frame.
func (in *Input) IsKeyPressed(key Key) bool {
	k := &in.Keyboard.Keys[key]
	return (k.Down && k.Clicked > 0) || (!k.Down && k.Clicked >= 2)
}

// IsKeyReleased reports a release of key this frame.
func (in *Input) IsKeyReleased(key Key) bool {
	k := &in.Keyboard.Keys[key]
	return (!k.Down && k.Clicked > 0) || (k.Down && k.Clicked >= 2)
}

// IsKeyDown reports whether key is held.
func (in *Input) IsKeyDown(key Key) bool { return in.Keyboard.Keys[key].Down }

var keyNames = [KeyCount]string{
	KeyNone:            "--",
	KeyShift:           "Shift",
	KeyCtrl:            "Ctrl",
	KeyDel:             "Del",
	KeyEnter:           "Enter",
	KeyTab:             "Tab",
	KeyBackspace:       "Backspace",
	KeyCopy:            "Copy",
	KeyCut:             "Cut",
	KeyPaste:           "Paste",
	KeyUp:              "Up",
	KeyDown:            "Down",
	KeyLeft:            "Left",
	KeyRight:           "Right",
	KeyTextInsertMode:  "InsertMode",
	KeyTextReplaceMode: "ReplaceMode",
	KeyTextResetMode:   "ResetMode",
	KeyTextLineStart:   "LineStart",
	KeyTextLineEnd:     "LineEnd",
	KeyTextStart:       "TextStart",
	KeyTextEnd:         "TextEnd",
	KeyTextUndo:        "Undo",
	KeyTextRedo:        "Redo",
	KeyTextSelectAll:   "SelectAll",
	KeyTextWordLeft:    "WordLeft",
	KeyTextWordRight:   "WordRight",
	KeyScrollStart:     "ScrollStart",
	KeyScrollEnd:       "ScrollEnd",
	KeyScrollDown:      "ScrollDown",
	KeyScrollUp:        "ScrollUp",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if k >= 0 && k < KeyCount {
		return keyNames[k]
	}
	return "?"
}

func (k Key) String() string { return KeyName(k) }
