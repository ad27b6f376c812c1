package sdbf

import (
	"fmt"
)

// Entropy64 returns the scaled entropy of the first PopWinSize bytes of
// window. counts is reset and left holding the byte frequencies of that
// window, ready for RollEntropy64.
func Entropy64(window []byte, counts *[256]uint8) (uint64, error) {
	if len(window) < PopWinSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrShortWindow, len(window))
	}
	*counts = [256]uint8{}
	for _, b := range window[:PopWinSize] {
		counts[b]++
	}
	var entr uint64
	for _, c := range counts {
		if c != 0 {
			entr += EntropyTerm(int(c))
		}
	}
	return entr, nil
}

// RollEntropy64 slides the window one byte: window[0] leaves and
// window[PopWinSize] enters. prev and counts must describe
// window[:PopWinSize]; counts is updated in place. The result is clamped to
// [0, EntrScale].
func RollEntropy64(prev uint64, window []byte, counts *[256]uint8) (uint64, error) {
	if len(window) < PopWinSize+1 {
		return 0, fmt.Errorf("%w: %d bytes", ErrShortWindow, len(window))
	}
	out, in := window[0], window[PopWinSize]
	if out == in {
		return prev, nil
	}

	oldCount, newCount := int(counts[out]), int(counts[in])
	if oldCount == 0 || newCount >= PopWinSize {
		return 0, fmt.Errorf("%w: byte %#02x", ErrWindowCounts, out)
	}
	counts[out]--
	counts[in]++

	if oldCount == newCount+1 {
		return prev, nil
	}

	oldDiff := int64(EntropyTerm(oldCount)) - int64(EntropyTerm(oldCount-1))
	newDiff := int64(EntropyTerm(newCount+1)) - int64(EntropyTerm(newCount))

	entropy := int64(prev) - oldDiff + newDiff
	return uint64(max(0, min(entropy, EntrScale))), nil
}
