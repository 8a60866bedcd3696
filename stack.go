package nk

import g "go.hasen.dev/generic"

// Style stack capacities.
const (
	StyleItemStackSize      = 16
	FloatStackSize          = 32
	VectorStackSize         = 16
	FlagsStackSize          = 32
	ColorStackSize          = 32
	FontStackSize           = 8
	ButtonBehaviorStackSize = 8
)

type stackEntry[T any] struct {
	addr *T
	old  T
}

// styleStack remembers overwritten values so they can be restored in
// reverse order.
type styleStack[T any] struct {
	entries []stackEntry[T]
	limit   int
}

func (s *styleStack[T]) push(addr *T, v T) bool {
	if len(s.entries) >= s.limit {
		return false
	}
	g.Append(&s.entries, stackEntry[T]{addr: addr, old: *addr})
	*addr = v
	return true
}

func (s *styleStack[T]) pop() bool {
	n := len(s.entries)
	if n == 0 {
		return false
	}
	e := s.entries[n-1]
	*e.addr = e.old
	g.RemoveAt(&s.entries, n-1, 1)
	return true
}

func (s *styleStack[T]) depth() int { return len(s.entries) }

type configStacks struct {
	styleItems      styleStack[StyleItem]
	floats          styleStack[float32]
	vectors         styleStack[Vec2]
	flags           styleStack[TextAlign]
	colors          styleStack[Color]
	fonts           styleStack[Font]
	buttonBehaviors styleStack[ButtonBehavior]
}

func (c *configStacks) init() {
	c.styleItems.limit = StyleItemStackSize
	c.floats.limit = FloatStackSize
	c.vectors.limit = VectorStackSize
	c.flags.limit = FlagsStackSize
	c.colors.limit = ColorStackSize
	c.fonts.limit = FontStackSize
	c.buttonBehaviors.limit = ButtonBehaviorStackSize
}

func pushStack[T any](ctx *Context, s *styleStack[T], addr *T, v T, kind string) func() {
	if !s.push(addr, v) {
		ctx.violation(ErrStackOverflow, "%s stack holds %d entries", kind, s.limit)
		return func() {}
	}
	depth := s.depth()
	done := false
	return func() {
		if done {
			ctx.violation(ErrStackOrder, "%s restore called twice", kind)
			return
		}
		if s.depth() != depth {
			ctx.violation(ErrStackOrder, "%s restore at depth %d, pushed at %d", kind, s.depth(), depth)
			return
		}
		done = true
		popStack(ctx, s, kind)
	}
}

func popStack[T any](ctx *Context, s *styleStack[T], kind string) {
	if !s.pop() {
		ctx.violation(ErrStackUnderflow, "%s stack is empty", kind)
	}
}

// PushStyleItem overrides a style background until the returned func or
// PopStyleItem is called.
//
//	defer ctx.PushStyleItem(&ctx.Style().Button.Normal, nk.StyleItemColor(nk.ColorRed))()
func (ctx *Context) PushStyleItem(addr *StyleItem, v StyleItem) func() {
	return pushStack(ctx, &ctx.stacks.styleItems, addr, v, "style item")
}

// PushFloat overrides a style metric.
func (ctx *Context) PushFloat(addr *float32, v float32) func() {
	return pushStack(ctx, &ctx.stacks.floats, addr, v, "float")
}

// PushVec2 overrides a style vector such as a padding.
func (ctx *Context) PushVec2(addr *Vec2, v Vec2) func() {
	return pushStack(ctx, &ctx.stacks.vectors, addr, v, "vector")
}

// PushFlags overrides a text alignment.
func (ctx *Context) PushFlags(addr *TextAlign, v TextAlign) func() {
	return pushStack(ctx, &ctx.stacks.flags, addr, v, "flags")
}

// PushColor overrides a style color.
func (ctx *Context) PushColor(addr *Color, v Color) func() {
	return pushStack(ctx, &ctx.stacks.colors, addr, v, "color")
}

// PushFont switches the font used for measuring and drawing.
func (ctx *Context) PushFont(f Font) func() {
	return pushStack(ctx, &ctx.stacks.fonts, &ctx.style.Font, Font(newMeasuredFont(f)), "font")
}

// PushButtonBehavior switches buttons between click and repeat triggers.
func (ctx *Context) PushButtonBehavior(b ButtonBehavior) func() {
	return pushStack(ctx, &ctx.stacks.buttonBehaviors, &ctx.buttonBehavior, b, "button behavior")
}

func (ctx *Context) PopStyleItem() { popStack(ctx, &ctx.stacks.styleItems, "style item") }
func (ctx *Context) PopFloat()     { popStack(ctx, &ctx.stacks.floats, "float") }
func (ctx *Context) PopVec2()      { popStack(ctx, &ctx.stacks.vectors, "vector") }
func (ctx *Context) PopFlags()     { popStack(ctx, &ctx.stacks.flags, "flags") }
func (ctx *Context) PopColor()     { popStack(ctx, &ctx.stacks.colors, "color") }
func (ctx *Context) PopFont()      { popStack(ctx, &ctx.stacks.fonts, "font") }

// PopButtonBehavior restores the previous button behavior.
func (ctx *Context) PopButtonBehavior() {
	popStack(ctx, &ctx.stacks.buttonBehaviors, "button behavior")
}
