package textedit

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs and hand it
// to each editor with WithClipboard.
//
// For GLFW see opengl.GLFWClipboard. Terminals usually have no readable
// clipboard, so the terminal backend uses a MemoryClipboard.
type ClipboardProvider interface {
	// GetText retrieves text from the clipboard.
	// ok is false if the clipboard is empty or holds non-text data.
	GetText() (text string, ok bool)

	// SetText copies text to the clipboard.
	SetText(text string)
}

// MemoryClipboard is an in-process clipboard.
// Editors sharing one MemoryClipboard can copy and paste between each other.
type MemoryClipboard struct {
	text string
	set  bool
}

// NewMemoryClipboard creates an empty in-process clipboard.
func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

// GetText implements ClipboardProvider.
func (c *MemoryClipboard) GetText() (string, bool) {
	return c.text, c.set
}

// SetText implements ClipboardProvider.
func (c *MemoryClipboard) SetText(text string) {
	c.text = text
	c.set = true
}
