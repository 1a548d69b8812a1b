package out

import (
	"sort"

	stopwatchout "kickclock/internal/modules/stopwatch/port/out"
)

// Element is a named text slot. It serves both as a display sink and as an
// editable output field.
type Element struct {
	id    string
	value string
}

var (
	_ stopwatchout.TextSink = (*Element)(nil)
	_ stopwatchout.Field    = (*Element)(nil)
)

func (e *Element) ID() string            { return e.id }
func (e *Element) Value() string         { return e.value }
func (e *Element) SetValue(value string) { e.value = value }
func (e *Element) SetText(text string)   { e.value = text }
func (e *Element) Clear()                { e.value = "" }

// ElementSet is the registry of named elements shared by the stopwatches and
// the form that displays them. It is owned by the UI loop and not safe for
// concurrent use.
type ElementSet struct {
	elements map[string]*Element
}

func NewElementSet() *ElementSet {
	return &ElementSet{elements: map[string]*Element{}}
}

// Element returns the element with id, creating an empty one on first use.
func (s *ElementSet) Element(id string) *Element {
	if e, ok := s.elements[id]; ok {
		return e
	}
	e := &Element{id: id}
	s.elements[id] = e
	return e
}

func (s *ElementSet) Lookup(id string) (*Element, bool) {
	e, ok := s.elements[id]
	return e, ok
}

// Value returns "" for unknown ids.
func (s *ElementSet) Value(id string) string {
	if e, ok := s.elements[id]; ok {
		return e.value
	}
	return ""
}

func (s *ElementSet) SetValue(id, value string) {
	s.Element(id).SetValue(value)
}

// Snapshot copies every element value, for handing off to work that runs
// outside the UI loop.
func (s *ElementSet) Snapshot() map[string]string {
	out := make(map[string]string, len(s.elements))
	for id, e := range s.elements {
		out[id] = e.value
	}
	return out
}

func (s *ElementSet) IDs() []string {
	ids := make([]string, 0, len(s.elements))
	for id := range s.elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
