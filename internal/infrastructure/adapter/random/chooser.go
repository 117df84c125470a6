package random

import (
	"math/rand"
	"sync"

	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
)

// Chooser is a goroutine-safe core.Chooser over math/rand
type Chooser struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewChooser seeds the generator; equal seeds give equal sequences
func NewChooser(seed int64) coreport.Chooser {
	return &Chooser{rnd: rand.New(rand.NewSource(seed))}
}

func (c *Chooser) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.Intn(n)
}
