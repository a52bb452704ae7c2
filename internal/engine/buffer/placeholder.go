package buffer

// Placeholder is the read-only empty buffer a new frame shows until real
// content is attached.
type Placeholder struct{}

// LineCount always returns 1.
func (Placeholder) LineCount() int { return 1 }

// LineLen always returns 0.
func (Placeholder) LineLen(int) int { return 0 }

// CharAt never finds a character.
func (Placeholder) CharAt(int, int) (rune, bool) { return 0, false }

// LineStart always returns 0.
func (Placeholder) LineStart(int) int { return 0 }

// InsertChar rejects the edit.
func (Placeholder) InsertChar(int, rune) error { return ErrReadOnly }

// DeleteRange rejects the edit.
func (Placeholder) DeleteRange(int, int) error { return ErrReadOnly }

// Text returns the empty string.
func (Placeholder) Text() string { return "" }

var _ Buffer = Placeholder{}
