package ports

// Rand is the seedable random source behind every behavioral coin
// flip. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
