package nk

import g "go.hasen.dev/generic"

// pool recycles fixed-size objects of one kind. A positive limit bounds
// the number of live objects; alloc then returns nil once it is reached.
type pool[T any] struct {
	free  []*T
	live  int
	limit int
}

func (p *pool[T]) alloc() *T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		g.RemoveAt(&p.free, n-1, 1)
		p.live++
		return v
	}
	if p.limit > 0 && p.live >= p.limit {
		return nil
	}
	p.live++
	return new(T)
}

// release zeroes v and keeps it for reuse.
func (p *pool[T]) release(v *T) {
	if v == nil {
		return
	}
	var zero T
	*v = zero
	g.Append(&p.free, v)
	p.live--
}

// inUse returns the number of objects handed out and not yet released.
func (p *pool[T]) inUse() int { return p.live }
