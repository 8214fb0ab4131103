package roster

// Jersey caps for generated players.
const (
	DefaultFillJerseyCap      = 99
	DefaultGeneratedJerseyCap = 30
)

// JerseyPool hands out jersey numbers not yet used on a team, probing upward from 1
// and wrapping back to 1 after limit.
type JerseyPool struct {
	limit  int
	used   map[int]bool
	cursor int
}

// NewJerseyPool reserves every number in used. A limit below 1 falls back to DefaultFillJerseyCap.
func NewJerseyPool(limit int, used map[int]bool) *JerseyPool {
	if limit < 1 {
		limit = DefaultFillJerseyCap
	}
	reserved := make(map[int]bool, len(used))
	for n, ok := range used {
		if ok {
			reserved[n] = true
		}
	}
	return &JerseyPool{limit: limit, used: reserved, cursor: 1}
}

// Next returns the next free number in [1, limit] and reserves it. It reports false once
// every number in range is taken.
func (p *JerseyPool) Next() (int, bool) {
	n := p.cursor
	for i := 0; i < p.limit; i++ {
		if !p.used[n] {
			p.used[n] = true
			p.cursor = n%p.limit + 1
			return n, true
		}
		n = n%p.limit + 1
	}
	return 0, false
}
