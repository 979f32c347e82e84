package media

import (
	"math/rand"
	"time"
)

// Packer partitions an ordered sequence of items into consecutive rows of
// randomized size. Packing never reorders: flattening the rows reproduces
// the input exactly.
type Packer struct {
	rng *rand.Rand
}

// NewPacker returns a packer drawing row sizes from rng. A nil rng gets a
// time-seeded source; tests pass a seeded one for reproducibility.
func NewPacker(rng *rand.Rand) *Packer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Packer{rng: rng}
}

// Pack groups items left to right. Each row gets a fresh sampled target
// size; the row closes when it reaches that size or the input runs out.
func (p *Packer) Pack(items []Item) []Row {
	var rows []Row
	var current Row
	target := p.rowSize()
	for i, item := range items {
		current = append(current, item)
		if len(current) == target || i == len(items)-1 {
			rows = append(rows, current)
			current = nil
			target = p.rowSize()
		}
	}
	return rows
}

// rowSize samples from the fixed distribution P(1)=0.15, P(2)=0.35,
// P(3)=0.50.
func (p *Packer) rowSize() int {
	r := p.rng.Float64()
	switch {
	case r < 0.15:
		return 1
	case r < 0.50:
		return 2
	default:
		return 3
	}
}
