package attach

import (
	"github.com/npillmayer/arabtext/detector"
)

// TextDisplay is an in-memory display with a name, for simulations and
// tests.
type TextDisplay struct {
	*detector.Buffer
	Name  string
	id    int
	Owned bool // display is considered to carry a handler of its own
}

// ID returns the identity of the display within its scene.
func (td *TextDisplay) ID() int {
	return td.id
}

// HasHandler returns td.Owned.
func (td *TextDisplay) HasHandler() bool {
	return td.Owned
}

// MemoryScene is a flat scene of TextDisplays.
type MemoryScene struct {
	displays []*TextDisplay
	nextID   int
}

// Add creates a display in the scene.
func (s *MemoryScene) Add(name, text string) *TextDisplay {
	s.nextID++
	td := &TextDisplay{Buffer: detector.NewBuffer(text), Name: name, id: s.nextID}
	s.displays = append(s.displays, td)
	return td
}

// Remove deletes the first display named name from the scene.
func (s *MemoryScene) Remove(name string) bool {
	for i, td := range s.displays {
		if td.Name == name {
			s.displays = append(s.displays[:i], s.displays[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup finds a display by name.
func (s *MemoryScene) Lookup(name string) (*TextDisplay, bool) {
	for _, td := range s.displays {
		if td.Name == name {
			return td, true
		}
	}
	return nil, false
}

// TextDisplays returns the displays of the scene in order of creation.
func (s *MemoryScene) TextDisplays() []*TextDisplay {
	return s.displays
}

// Displays is part of interface Scene.
func (s *MemoryScene) Displays() []Display {
	d := make([]Display, len(s.displays))
	for i, td := range s.displays {
		d[i] = td
	}
	return d
}
