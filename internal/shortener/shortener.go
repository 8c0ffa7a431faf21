package shortener

import "math/rand/v2"

const (
	Alphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	DefaultLength = 6
)

// GenerateCode returns length characters drawn uniformly from Alphabet.
// Codes are not secret and not unique on their own.
func GenerateCode(length int) string {
	if length <= 0 {
		length = DefaultLength
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = Alphabet[rand.IntN(len(Alphabet))]
	}
	return string(buf)
}

type Shortener struct {
	length int
}

func New(length int) *Shortener {
	if length <= 0 {
		length = DefaultLength
	}
	return &Shortener{length: length}
}

func (s *Shortener) Generate() string {
	return GenerateCode(s.length)
}
