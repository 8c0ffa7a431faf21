package shortener_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/shortener"
)

func TestGenerateCode_LengthAndAlphabet(t *testing.T) {
	for _, length := range []int{1, 6, 12} {
		code := shortener.GenerateCode(length)
		require.Len(t, code, length)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(shortener.Alphabet, r), "unexpected rune %q", r)
		}
	}
}

func TestGenerateCode_DefaultLength(t *testing.T) {
	assert.Len(t, shortener.GenerateCode(0), shortener.DefaultLength)
	assert.Len(t, shortener.GenerateCode(-3), shortener.DefaultLength)
}

func TestGenerateCode_Varies(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		seen[shortener.GenerateCode(6)] = struct{}{}
	}
	// 62^6 codes; a thousand draws colliding more than a handful of times means a broken source.
	assert.Greater(t, len(seen), 990)
}

func TestGenerateCode_UsesWholeAlphabet(t *testing.T) {
	counts := make(map[rune]int, len(shortener.Alphabet))
	for range 2000 {
		for _, r := range shortener.GenerateCode(6) {
			counts[r]++
		}
	}
	assert.Len(t, counts, len(shortener.Alphabet))
}

func TestShortener_Generate(t *testing.T) {
	assert.Len(t, shortener.New(8).Generate(), 8)
	assert.Len(t, shortener.New(0).Generate(), shortener.DefaultLength)
}
