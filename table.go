package nk

// TableCapacity is the number of values one state table page holds.
const TableCapacity = 32

// table is one page of per-window widget state: tree collapse flags and
// group scroll offsets keyed by name hash. Pages of a window form a list
// with the newest page at the head.
type table struct {
	seq        uint
	size       int
	keys       [TableCapacity]Hash
	values     [TableCapacity]uint32
	next, prev *table
}

type tableSlot struct {
	page *table
	i    int
}

// findValue looks up name in the tables of win. A hit marks the page as
// used this frame.
func (ctx *Context) findValue(win *Window, name Hash) *uint32 {
	s, ok := win.index[name]
	if !ok {
		return nil
	}
	s.page.seq = win.seq
	return &s.page.values[s.i]
}

// addValue stores a new value for name in win and returns a pointer to it.
// It returns nil when the table pool is exhausted.
func (ctx *Context) addValue(win *Window, name Hash, value uint32) *uint32 {
	head := win.tables
	if head == nil || head.size >= TableCapacity {
		page := ctx.tablePool.alloc()
		if page == nil {
			ctx.log.Debug("table pool exhausted", "window", win.nameString)
			return nil
		}
		page.next = head
		if head != nil {
			head.prev = page
		}
		win.tables = page
		win.tableCount++
		head = page
	}
	head.seq = win.seq
	i := head.size
	head.keys[i] = name
	head.values[i] = value
	head.size++
	if win.index == nil {
		win.index = make(map[Hash]tableSlot)
	}
	win.index[name] = tableSlot{page: head, i: i}
	return &head.values[i]
}

// value returns the stored value for name, creating it with init.
func (ctx *Context) value(win *Window, name Hash, init uint32) *uint32 {
	if v := ctx.findValue(win, name); v != nil {
		return v
	}
	return ctx.addValue(win, name, init)
}

// reapTables unlinks the pages of win not touched in frame seq and
// returns them to the pool.
func (ctx *Context) reapTables(win *Window, seq uint) {
	for it := win.tables; it != nil; {
		next := it.next
		if it.seq != seq {
			ctx.removeTable(win, it)
		}
		it = next
	}
}

func (ctx *Context) removeTable(win *Window, t *table) {
	for i := range t.size {
		if s, ok := win.index[t.keys[i]]; ok && s.page == t {
			delete(win.index, t.keys[i])
		}
	}
	if t.prev != nil {
		t.prev.next = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	}
	if win.tables == t {
		win.tables = t.next
	}
	win.tableCount--
	ctx.log.Debug("table page reaped", "window", win.nameString, "values", t.size)
	ctx.tablePool.release(t)
}

// freeTables returns every page of win to the pool.
func (ctx *Context) freeTables(win *Window) {
	for it := win.tables; it != nil; {
		next := it.next
		ctx.tablePool.release(it)
		it = next
	}
	win.tables = nil
	win.tableCount = 0
	win.index = nil
}
