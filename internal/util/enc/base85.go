package enc

import (
	"encoding/binary"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters, using the RFC1924 alphabet. Trailing groups are not
// padded: n remaining bytes are encoded into n+1 characters.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int {
	l := n / 4 * 5
	if r := n % 4; r != 0 {
		l += r + 1
	}
	return l
}

// DecodedLen returns the length of the decoding of n symbols. Spaces must not be counted in n.
func DecodedLen(n int) int {
	l := n / 5 * 4
	if r := n % 5; r > 1 {
		l += r - 1
	}
	return l
}

func (b *Base85Encoder) Encode(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	pos := 0

	for len(src) > 0 {
		n := len(src)
		if n > 4 {
			n = 4
		}

		// Missing bytes of the last chunk are zeros
		var chunk [4]byte
		copy(chunk[:], src[:n])
		v := binary.BigEndian.Uint32(chunk[:])

		// Most significant digit first
		var digits [5]byte
		for i := 4; i >= 0; i-- {
			digits[i] = cb85[v%85]
			v /= 85
		}

		pos += copy(dst[pos:], digits[:n+1])
		src = src[n:]
	}

	return string(dst)
}

func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	// Only the space character is ignored. Tabs, newlines, etc. are invalid.
	src := strings.ReplaceAll(data, " ", "")
	dst := make([]byte, 0, DecodedLen(len(src)))

	var out [4]byte
	for offset := 0; offset < len(src); offset += 5 {
		end := offset + 5
		if end > len(src) {
			end = len(src)
		}
		group := src[offset:end]

		v, err := decodeGroup(group, offset)
		if err != nil {
			return nil, err
		}
		binary.BigEndian.PutUint32(out[:], v)

		if len(group) == 5 {
			dst = append(dst, out[:]...)
		} else {
			// The padding adds one byte of noise; a single trailing symbol yields nothing.
			dst = append(dst, out[:len(group)-1]...)
		}
	}

	return dst, nil
}

// decodeGroup folds up to five symbols into a 32-bit number. Short groups are completed with the
// highest digit. Values above 2^32-1 cannot be produced by the encoder and wrap around.
func decodeGroup(group string, offset int) (uint32, error) {
	var acc uint32
	for i := 0; i < 5; i++ {
		c := byte(padSymbol)
		if i < len(group) {
			c = group[i]
		}
		val, ok := charToValue(c)
		if !ok {
			log.Tracef("Rejecting base85 input: invalid symbol %q at offset %d", c, offset+i)
			return 0, invalidSymbolError(c, offset+i)
		}
		acc = acc*85 + uint32(val)
	}
	return acc, nil
}

func (b *Base85Encoder) BlocksizeRaw() int {
	return 4
}

func (b *Base85Encoder) BlocksizeEncoded() int {
	return 5
}

func (b *Base85Encoder) TestPatterns() []string {
	return []string{
		"aA" + cb85,
		cb85[62:],
	}
}

func (b *Base85Encoder) Ratio() float64 {
	return 5.0 / 4.0
}
