package sdbf

import (
	"strings"

	"github.com/forestrie/go-sdbf/bloom"
)

const (
	DefaultSetName = "default"
	DefaultSetSep  = '|'
)

// Set is an ordered collection of digests with an optional index filter.
type Set struct {
	// Index, when set, summarises the members of the set.
	Index *bloom.Filter
	// Vectors holds the filter vectors built over the set.
	Vectors []*Vector

	items []*Digest
	name  string
	sep   rune
}

func NewSet() *Set {
	return &Set{name: DefaultSetName, sep: DefaultSetSep}
}

// NewIndexedSet creates an empty set that carries index.
func NewIndexedSet(index *bloom.Filter) *Set {
	s := NewSet()
	s.Index = index
	return s
}

func (s *Set) Name() string        { return s.name }
func (s *Set) SetName(name string) { s.name = name }
func (s *Set) Separator() rune     { return s.sep }

// At returns the digest at position pos, or false if pos is out of range.
func (s *Set) At(pos int) (*Digest, bool) {
	if pos < 0 || pos >= len(s.items) {
		return nil, false
	}
	return s.items[pos], true
}

func (s *Set) Add(d *Digest) {
	s.items = append(s.items, d)
}

// AddAll appends every digest of other, in order. The digests are shared,
// not copied.
func (s *Set) AddAll(other *Set) {
	s.items = append(s.items, other.items...)
}

func (s *Set) Len() int      { return len(s.items) }
func (s *Set) IsEmpty() bool { return len(s.items) == 0 }

// String lists the member digest names joined by the set separator.
func (s *Set) String() string {
	names := make([]string, 0, len(s.items))
	for _, d := range s.items {
		names = append(names, d.Name())
	}
	return strings.Join(names, string(s.sep))
}
