package domain

// Zero overwrites a byte slice with zeros to clear phrases, salts and keys from memory.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// ZeroRunes overwrites a rune slice with zeros to clear discarded password candidates.
func ZeroRunes(r []rune) {
	if r == nil {
		return
	}
	for i := range r {
		r[i] = 0
	}
}
