package enc

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of bytes) output by this encoder for every input block
	BlocksizeEncoded() int

	// Ratio is the size of the encoded output relative to the raw input
	Ratio() float64

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}
