/*
Package nk is an embeddable immediate-mode GUI toolkit.

# Overview

Each frame the embedder feeds input events into a Context, declares
windows, layout rows and widgets, iterates the resulting draw commands and
finally clears the frame. The package never renders anything by itself:
the command list is consumed by an external renderer such as the one in
backend/opengl. State that must survive between frames (window positions,
scroll offsets, tree and group state, the active edit field) is kept by the
Context and keyed by hashed names.

# Quick Start

	ctx := nk.New(nk.WithFont(nk.NewFaceFont(basicfont.Face7x13)))
	defer ctx.Free()

	for !window.ShouldClose() {
	    ctx.InputBegin()
	    ctx.InputMotion(mouseX, mouseY)
	    ctx.InputButton(nk.ButtonLeft, mouseX, mouseY, leftDown)
	    ctx.InputEnd()

	    if ctx.Begin("Demo", nk.Rect{X: 50, Y: 50, W: 220, H: 220},
	        nk.WindowBorder|nk.WindowMovable|nk.WindowTitle) {
	        ctx.LayoutRowStatic(30, 80, 1)
	        if ctx.Button("button") {
	            // clicked
	        }
	    }
	    ctx.End()

	    for cmd := range ctx.Commands() {
	        draw(cmd)
	    }
	    ctx.Clear()
	}

# Frame Lifecycle

A frame is InputBegin, input events, InputEnd, any number of Begin/End
pairs, iteration of Commands, and Clear. Clear frees windows that were not
declared during the frame, so a window disappears by simply not declaring
it. Windows are drawn back to front; the last activated window is on top
and is the only one that receives input.

Every Begin must be paired with End, including when Begin returns false.
Popups, menus, combo boxes, contextual menus, tooltips, groups, tree nodes
and charts pair their Begin with End only when Begin returned true.

# Layout

Rows are declared before their widgets. LayoutRowDynamic splits the row
into equal columns, LayoutRowStatic uses fixed widths, LayoutRow and
LayoutRowBegin take ratios or widths, LayoutRowTemplateBegin mixes dynamic,
variable and static columns, and LayoutSpaceBegin places widgets at
arbitrary positions. Widgets that fall outside the visible area of the
window are not drawn and report WidgetInvalid from Widget.

# Errors

Misuse, such as declaring a widget outside a window or popping a tree node
that was never pushed, is reported through sentinel errors. In strict mode
(the default) the Context panics with the error; WithStrict(false) logs it
through the configured slog.Logger and ignores the call instead.

# Keyboard Shortcuts Reference

The Key values are semantic; platform adapters translate physical keys.
backend/opengl maps them as follows.

Navigation:

	Left, Right      Move cursor one character
	Ctrl+Left/Right  Move cursor one word
	Up, Down         Move cursor one row in multi-line fields
	Home, End        Jump to start or end of text
	Ctrl+B, Ctrl+E   Jump to start or end of the row

Selection and editing:

	Shift+movement   Extend the selection
	Ctrl+A           Select all text
	Ctrl+C/X/V       Copy, cut, paste through the Clipboard
	Ctrl+Z, Ctrl+R   Undo, redo
	Enter            Commit a field declared with EditSigEnter

Scrolling:

	Page Up/Down     Scroll the hovered window
	Home, End        Scroll to start or end

# Themes

A Theme is a YAML document naming colors of the color table plus a few
metrics:

	colors:
	  text: "#AFAFAF"
	  window: "#2D2D2DF0"
	rounding: 4
	padding: [8, 4]

LoadTheme reads one from disk and WithTheme applies it to a new Context.

# Clipboard Integration

Edit fields declared with EditClipboard copy and paste through the
Clipboard given to WithClipboard. Without one, a process-local clipboard is
used.
*/
package nk
