package core

// Chooser picks an index in [0, n). Used for the filler reply.
type Chooser interface {
	Intn(n int) int
}
