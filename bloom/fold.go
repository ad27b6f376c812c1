package bloom

// Fold halves the filter times times by OR'ing the upper half of the buffer
// onto the lower half. Folding stops early once the buffer reaches FoldFloor
// bytes, so callers must not assume every requested halving ran; the number
// actually performed is returned.
//
// Folding only adds apparent density. A position that queried true before a
// fold still queries true afterwards.
func (f *Filter) Fold(times uint32) uint32 {
	var done uint32
	for ; done < times && len(f.buf) > FoldFloor; done++ {
		half := wordCount(f.buf) / 2
		for j := range half {
			setWord(f.buf, j, word(f.buf, j)|word(f.buf, j+half))
		}
		f.buf = f.buf[:half*wordBytes]
	}
	if done == 0 {
		return 0
	}
	// Release the upper half.
	f.buf = append([]byte(nil), f.buf...)
	f.bitMask = BitMaskFor(len(f.buf))
	f.computeHamming()
	return done
}
