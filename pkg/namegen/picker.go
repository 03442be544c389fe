package namegen

import (
	"math/rand/v2"
	"sync"
)

// Picker chooses one element from a list of words.
// Implementations must return "" for an empty list instead of failing.
type Picker interface {
	Pick(items []string) string
}

// PickerFunc adapts an index source to the Picker interface. The function
// receives the list length n > 0 and should return an index in [0, n);
// out-of-range values are wrapped into range.
type PickerFunc func(n int) int

// Pick implements Picker.
func (f PickerFunc) Pick(items []string) string {
	n := len(items)
	if n == 0 {
		return ""
	}
	i := f(n) % n
	if i < 0 {
		i += n
	}
	return items[i]
}

// DefaultPicker draws from the runtime's randomly seeded generator and is safe
// for concurrent use.
var DefaultPicker Picker = PickerFunc(rand.IntN)

// RandPicker picks uniformly using its own random source. Access to the source
// is serialised, so a single RandPicker may be shared between goroutines.
type RandPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandPicker returns a picker backed by src.
func NewRandPicker(src rand.Source) *RandPicker {
	return &RandPicker{rnd: rand.New(src)}
}

// NewSeededPicker returns a picker whose sequence is fully determined by seed.
func NewSeededPicker(seed uint64) *RandPicker {
	return NewRandPicker(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pick implements Picker.
func (p *RandPicker) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	p.mu.Lock()
	i := p.rnd.IntN(len(items))
	p.mu.Unlock()
	return items[i]
}
