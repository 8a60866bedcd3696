package nk

// Clipboard abstracts system clipboard access. It is only consulted on
// explicit cut, copy and paste key events of an edit field that has the
// EditClipboard flag. backend/opengl provides one for GLFW windows.
type Clipboard interface {
	// Copy places text on the clipboard.
	Copy(text string)

	// Paste returns the clipboard text, or false if it holds no text.
	Paste() (string, bool)
}

// MemoryClipboard is an in-process clipboard, useful for tests and for
// embedders without a system clipboard.
type MemoryClipboard struct {
	text string
	set  bool
}

// Copy stores text.
func (c *MemoryClipboard) Copy(text string) {
	c.text = text
	c.set = true
}

// Paste returns the stored text.
func (c *MemoryClipboard) Paste() (string, bool) {
	return c.text, c.set
}
