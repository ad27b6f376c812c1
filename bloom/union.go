package bloom

import "fmt"

// Union ORs other into f. Both filters must have the same size; on mismatch
// f is left untouched.
func (f *Filter) Union(other *Filter) error {
	if len(f.buf) != len(other.buf) {
		return fmt.Errorf("%w: %d vs %d bytes", ErrSizeMismatch, len(f.buf), len(other.buf))
	}
	for j := range wordCount(f.buf) {
		setWord(f.buf, j, word(f.buf, j)|word(other.buf, j))
	}
	f.computeHamming()
	return nil
}
