package core

// Chooser is the source of randomness for all stochastic decisions during
// synthesis (glyph selection, region extension, word generation).
// *math/rand.Rand satisfies it. Clients needing reproducible output create one
// seeded generator per sample; a Chooser is never shared between goroutines.
type Chooser interface {
	Intn(n int) int
}

// RandomInRange returns a random integer in the closed interval [lo, hi].
// If hi < lo, lo is returned.
func RandomInRange(rnd Chooser, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rnd.Intn(hi-lo+1)
}
