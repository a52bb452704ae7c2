// Package frame manages the editor's windows. A frame pairs a cursor with
// the buffer it moves over; exactly one frame is active while any exist.
package frame

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/modeline/internal/engine/buffer"
	"github.com/dshills/modeline/internal/engine/cursor"
)

// Errors returned by the manager.
var (
	// ErrMissingFrame indicates an id that names no frame.
	ErrMissingFrame = errors.New("missing frame")

	// ErrNoActiveFrame indicates an operation that needs an active frame
	// when none exists.
	ErrNoActiveFrame = errors.New("no active frame")
)

// ID identifies a frame. IDs are never reused.
type ID uint32

// Frame is one editing view.
type Frame struct {
	ID     ID
	Cursor cursor.Cursor
	Buffer buffer.Buffer

	// Path is the file the buffer was loaded from, if any.
	Path string
}

// Manager owns the frames and tracks the active one.
type Manager struct {
	frames map[ID]*Frame
	active ID
	hasAct bool
	next   ID
}

// NewManager creates a manager with no frames.
func NewManager() *Manager {
	return &Manager{
		frames: make(map[ID]*Frame),
		next:   1,
	}
}

// AddWindow creates a frame with a placeholder buffer, makes it active
// and returns its id.
func (m *Manager) AddWindow() ID {
	id := m.next
	m.next++
	m.frames[id] = &Frame{ID: id, Buffer: buffer.Placeholder{}}
	m.active = id
	m.hasAct = true
	return id
}

// FillWindow replaces a frame's buffer and resets its cursor.
func (m *Manager) FillWindow(id ID, buf buffer.Buffer) error {
	f, ok := m.frames[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrMissingFrame, id)
	}
	f.Buffer = buf
	f.Cursor = cursor.Cursor{}
	return nil
}

// Open adds a frame holding buf loaded from path and makes it active.
func (m *Manager) Open(buf buffer.Buffer, path string) ID {
	id := m.AddWindow()
	f := m.frames[id]
	f.Buffer = buf
	f.Path = path
	return id
}

// RemoveWindow deletes a frame. If it was active, the remaining frame
// with the lowest id becomes active.
func (m *Manager) RemoveWindow(id ID) error {
	if _, ok := m.frames[id]; !ok {
		return fmt.Errorf("%w: %d", ErrMissingFrame, id)
	}
	delete(m.frames, id)

	if !m.hasAct || m.active != id {
		return nil
	}
	ids := m.IDs()
	if len(ids) == 0 {
		m.active = 0
		m.hasAct = false
		return nil
	}
	m.active = ids[0]
	return nil
}

// Active returns the active frame.
func (m *Manager) Active() (*Frame, error) {
	if !m.hasAct {
		return nil, ErrNoActiveFrame
	}
	return m.frames[m.active], nil
}

// ActiveID returns the active frame's id.
func (m *Manager) ActiveID() (ID, bool) {
	return m.active, m.hasAct
}

// Focus makes id the active frame.
func (m *Manager) Focus(id ID) error {
	if _, ok := m.frames[id]; !ok {
		return fmt.Errorf("%w: %d", ErrMissingFrame, id)
	}
	m.active = id
	m.hasAct = true
	return nil
}

// Window returns the frame with the given id.
func (m *Manager) Window(id ID) (*Frame, bool) {
	f, ok := m.frames[id]
	return f, ok
}

// IDs returns all frame ids in ascending order.
func (m *Manager) IDs() []ID {
	ids := make([]ID, 0, len(m.frames))
	for id := range m.frames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of frames.
func (m *Manager) Len() int {
	return len(m.frames)
}

// Next focuses the frame after the active one, wrapping around.
func (m *Manager) Next() error {
	if !m.hasAct {
		return ErrNoActiveFrame
	}
	ids := m.IDs()
	for i, id := range ids {
		if id == m.active {
			m.active = ids[(i+1)%len(ids)]
			return nil
		}
	}
	return nil
}
