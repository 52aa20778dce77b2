package enc

import (
	"github.com/pkg/errors"
)

// ErrInvalidSymbol is returned (wrapped) when the decoder encounters a character outside of the alphabet.
var ErrInvalidSymbol = errors.New("invalid base85 symbol")

func invalidSymbolError(c byte, offset int) error {
	return errors.Wrapf(ErrInvalidSymbol, "symbol %q at offset %d", c, offset)
}
