package enc

import (
	"sync"
)

const (
	// Character set from RFC1924, section 4. Index is the value of the digit.
	cb85 = "0123456789" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"!#$%&()*+-;<=>?@^_`{|}~"

	// noSymbol marks bytes which are not part of the alphabet in the inverted table
	noSymbol = 0xFF

	// padSymbol is the highest digit (84). Short trailing groups are completed with it when decoding.
	padSymbol = '~'
)

var cb85Invert [256]byte
var cb85Initialized sync.Once

func init() {
	setupCb85Invert()
}

func setupCb85Invert() {
	cb85Initialized.Do(func() {
		for i := range cb85Invert {
			cb85Invert[i] = noSymbol
		}
		for i, v := range []byte(cb85) {
			cb85Invert[v] = byte(i)
		}
	})
}

// IntToBase85Char returns the character for the given digit value. Values outside of 0-84 "wrap over"
// and the remainder of the division by 85 is used instead.
func IntToBase85Char(in int) byte {
	in %= 85
	if in < 0 {
		in += 85
	}
	return cb85[in]
}

// Base85CharToInt returns the digit value of the given character or -1 if the character is not
// part of the alphabet.
func Base85CharToInt(in byte) int {
	if v, ok := charToValue(in); ok {
		return int(v)
	}
	return -1
}

func charToValue(c byte) (byte, bool) {
	v := cb85Invert[c]
	return v, v != noSymbol
}
