package sdbf

import (
	"errors"
)

var (
	ErrFilterSize    = errors.New("sdbf: filter size does not match the digest filter size")
	ErrFilterIndex   = errors.New("sdbf: filter index out of range")
	ErrShortWindow   = errors.New("sdbf: entropy window too short")
	ErrWindowCounts  = errors.New("sdbf: entropy window counts inconsistent with window")
	ErrInvalidConfig = errors.New("sdbf: invalid config")
	ErrEmptyVector   = errors.New("sdbf: vector needs at least one filter")
)
