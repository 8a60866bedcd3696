package nk

import "log/slog"

// Option configures a Context.
type Option func(*Context)

// DefaultPoolCapacity bounds the window, panel and table pools of a
// context created WithFixedMemory.
const DefaultPoolCapacity = 64

// WithFont sets the font used for measuring text.
func WithFont(f Font) Option {
	return func(ctx *Context) {
		if f != nil {
			ctx.style.Font = newMeasuredFont(f)
		}
	}
}

// WithStyle replaces the default style. A style without a font keeps the
// current one.
func WithStyle(s Style) Option {
	return func(ctx *Context) {
		f := ctx.style.Font
		ctx.style = s
		if s.Font == nil {
			ctx.style.Font = f
		} else {
			ctx.style.Font = newMeasuredFont(s.Font)
		}
	}
}

// WithTheme applies a theme loaded with ParseTheme or LoadTheme.
func WithTheme(t *Theme) Option {
	return func(ctx *Context) {
		if t != nil {
			WithStyle(t.Style())(ctx)
		}
	}
}

// WithAllocator backs the command arena with alloc.
func WithAllocator(alloc Allocator, initial int) Option {
	return func(ctx *Context) {
		ctx.memory = NewBuffer(alloc, initial)
	}
}

// WithFixedMemory places the command arena in mem. The arena never grows;
// once it is full further draw commands of the frame are dropped. The
// object pools are bounded as well, see WithPoolCapacity.
func WithFixedMemory(mem []byte) Option {
	return func(ctx *Context) {
		ctx.memory = NewFixedBuffer(mem)
		for _, limit := range []*int{&ctx.windowPool.limit, &ctx.panelPool.limit, &ctx.tablePool.limit} {
			if *limit == 0 {
				*limit = DefaultPoolCapacity
			}
		}
	}
}

// WithPoolCapacity bounds the number of live windows, panels and table
// pages. Zero means unbounded.
func WithPoolCapacity(n int) Option {
	return func(ctx *Context) {
		ctx.windowPool.limit = n
		ctx.panelPool.limit = n
		ctx.tablePool.limit = n
	}
}

// WithClipboard connects edit fields to a clipboard.
func WithClipboard(c Clipboard) Option {
	return func(ctx *Context) {
		ctx.clip = c
	}
}

// WithLogger sets the logger for debug records and downgraded violations.
func WithLogger(l *slog.Logger) Option {
	return func(ctx *Context) {
		if l != nil {
			ctx.log = l
		}
	}
}

// WithStrict selects whether call-order violations panic (the default) or
// are logged and ignored.
func WithStrict(strict bool) Option {
	return func(ctx *Context) {
		ctx.strict = strict
	}
}
