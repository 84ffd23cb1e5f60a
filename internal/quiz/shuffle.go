package quiz

import "math/rand"

// Rand is the source of randomness used for shuffling. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Shuffle permutes s in place with Fisher-Yates: for i from the last index
// down to 1, swap s[i] with s[j] for a uniform j in [0, i].
func Shuffle[T any](r Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
