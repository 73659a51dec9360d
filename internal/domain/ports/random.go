package ports

// Random is the entropy the generator draws from. Implementations shared
// between goroutines must synchronise internally.
type Random interface {
	// Float64 returns a number in [0, 1).
	Float64() float64

	// IntN returns a number in [0, n). It panics if n <= 0.
	IntN(n int) int
}
