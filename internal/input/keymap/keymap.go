package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/modeline/internal/input/key"
)

// ErrUnknownBinding is returned when a key is bound to an unknown name.
var ErrUnknownBinding = errors.New("unknown binding")

// Keymap maps single key events to binding names.
type Keymap struct {
	bindings map[key.Event]string
	keys     map[key.Event]string
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{
		bindings: make(map[key.Event]string),
		keys:     make(map[key.Event]string),
	}
}

// Default returns the default Normal-mode keymap.
func Default() *Keymap {
	km := New()
	for _, b := range defaultBindings {
		// Defaults are static and known to parse.
		_ = km.Bind(b.Keys, b.Action)
	}
	return km
}

var defaultBindings = []Binding{
	{Keys: "h", Action: CursorMoveLeft},
	{Keys: "j", Action: CursorMoveDown},
	{Keys: "k", Action: CursorMoveUp},
	{Keys: "l", Action: CursorMoveRight},
	{Keys: "<Left>", Action: CursorMoveLeft},
	{Keys: "<Down>", Action: CursorMoveDown},
	{Keys: "<Up>", Action: CursorMoveUp},
	{Keys: "<Right>", Action: CursorMoveRight},
	{Keys: "0", Action: CursorMoveLineStart},
	{Keys: "$", Action: CursorMoveLineEnd},
	{Keys: "}", Action: CursorParagraphForward},
	{Keys: "{", Action: CursorParagraphBackward},
	{Keys: "i", Action: ModeInsert},
	{Keys: "a", Action: ModeAppend},
	{Keys: ":", Action: ModeCommand},
	{Keys: "v", Action: ModeVisual},
	{Keys: "<C-s>", Action: BufferWrite},
	{Keys: "<C-c>", Action: EditorQuitHint},
}

// Bind binds keys, a single key in any notation key.Parse accepts, to a
// binding name.
func (k *Keymap) Bind(keys, name string) error {
	if !IsKnown(name) {
		return fmt.Errorf("%w: %q", ErrUnknownBinding, name)
	}
	ev, err := key.Parse(keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", keys, err)
	}
	ev = normalize(ev)
	k.bindings[ev] = name
	k.keys[ev] = keys
	return nil
}

// Unbind removes the binding for keys.
func (k *Keymap) Unbind(keys string) error {
	ev, err := key.Parse(keys)
	if err != nil {
		return fmt.Errorf("unbinding %q: %w", keys, err)
	}
	ev = normalize(ev)
	delete(k.bindings, ev)
	delete(k.keys, ev)
	return nil
}

// Apply applies overrides from configuration. An empty or "none" name
// unbinds the key. All overrides are validated before any is applied.
func (k *Keymap) Apply(overrides map[string]string) error {
	for keys, name := range overrides {
		if name == "" || name == "none" {
			if _, err := key.Parse(keys); err != nil {
				return fmt.Errorf("unbinding %q: %w", keys, err)
			}
			continue
		}
		if !IsKnown(name) {
			return fmt.Errorf("%q: %w: %q", keys, ErrUnknownBinding, name)
		}
		if _, err := key.Parse(keys); err != nil {
			return fmt.Errorf("binding %q: %w", keys, err)
		}
	}

	for keys, name := range overrides {
		if name == "" || name == "none" {
			_ = k.Unbind(keys)
			continue
		}
		_ = k.Bind(keys, name)
	}
	return nil
}

// Lookup returns the binding name for ev.
func (k *Keymap) Lookup(ev key.Event) (string, bool) {
	name, ok := k.bindings[normalize(ev)]
	return name, ok
}

// normalize drops Shift from character events; the character already
// says whether Shift was held.
func normalize(ev key.Event) key.Event {
	if ev.Key == key.KeyRune {
		ev.Modifiers = ev.Modifiers.Without(key.ModShift)
	}
	return ev
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Bindings returns all bindings sorted by key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for ev, name := range k.bindings {
		out = append(out, Binding{Keys: k.keys[ev], Action: name, Description: Describe(name)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Keys < out[j].Keys
	})
	return out
}

// Clone returns an independent copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	c := New()
	for ev, name := range k.bindings {
		c.bindings[ev] = name
		c.keys[ev] = k.keys[ev]
	}
	return c
}
