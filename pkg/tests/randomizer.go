package tests

import (
	"math/rand"
	"strings"
	"time"
)

// profileRunes mixes the character classes the scorers care about: ASCII
// letters and digits, separators, punctuation and non-Latin scripts.
const profileRunes = "abcXYZ019 .,-+_@'#/\t\néñёខ😀"

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// String returns up to maxLen runes drawn from a profile-like alphabet.
func (r Randomizer) String(maxLen int) string {
	alphabet := []rune(profileRunes)
	n := r.Intn(maxLen + 1)

	var b strings.Builder

	for range n {
		b.WriteRune(alphabet[r.Intn(len(alphabet))])
	}

	return b.String()
}
