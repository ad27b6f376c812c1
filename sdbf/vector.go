package sdbf

import (
	"github.com/forestrie/go-sdbf/bloom"
)

// Vector is a named sequence of bloom filters. It takes its name from the
// first filter it was created with.
type Vector struct {
	Items []*bloom.Filter
	Name  string
}

func NewVector(first *bloom.Filter) (*Vector, error) {
	if first == nil {
		return nil, ErrEmptyVector
	}
	return &Vector{
		Items: []*bloom.Filter{first},
		Name:  first.Name(),
	}, nil
}

// Append adds f to the end of the vector.
func (v *Vector) Append(f *bloom.Filter) {
	v.Items = append(v.Items, f)
}

// Len returns the number of filters in v.
func (v *Vector) Len() int { return len(v.Items) }
