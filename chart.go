package nk

// ChartType selects how a chart slot draws its values.
type ChartType uint8

const (
	ChartLines ChartType = iota
	ChartColumn
)

// ChartEvent reports pointer interaction with a pushed chart value.
type ChartEvent uint8

const (
	ChartHovering ChartEvent = 1 << iota
	ChartClicked
)

// MaxChartSlots is the number of data series one chart can hold.
const MaxChartSlots = 4

type chartSlot struct {
	typ         ChartType
	color       Color
	highlight   Color
	min, max    float32
	rng         float32
	count       int
	last        Vec2
	index       int
	showMarkers bool
}

type chart struct {
	slot       int
	x, y, w, h float32
	slots      [MaxChartSlots]chartSlot
}

func (c *chart) addSlot(typ ChartType, color, highlight Color, count int, lo, hi float32, markers bool) {
	if c.slot >= MaxChartSlots {
		return
	}
	s := &c.slots[c.slot]
	c.slot++
	*s = chartSlot{
		typ:         typ,
		color:       color,
		highlight:   highlight,
		min:         minf(lo, hi),
		max:         maxf(lo, hi),
		count:       count,
		showMarkers: markers,
	}
	s.rng = s.max - s.min
}

// ChartBegin starts a chart of count values between lo and hi in the
// next widget slot, colored by the chart style.
func (ctx *Context) ChartBegin(typ ChartType, count int, lo, hi float32) bool {
	return ctx.ChartBeginColored(typ, ctx.style.Chart.Color, ctx.style.Chart.SelectedColor, count, lo, hi)
}

// ChartBeginColored is ChartBegin with explicit colors. It returns false
// when the chart is not visible; ChartEnd is then not needed.
func (ctx *Context) ChartBeginColored(typ ChartType, color, highlight Color, count int, lo, hi float32) bool {
	if !ctx.requireWindow("ChartBegin") {
		return false
	}
	win := ctx.current
	c := &win.layout.chart
	bounds, state := ctx.Widget()
	*c = chart{}
	if state == WidgetInvalid {
		return false
	}
	style := &ctx.style.Chart
	c.x = bounds.X + style.Padding.X
	c.y = bounds.Y + style.Padding.Y
	c.w = maxf(bounds.W-2*style.Padding.X, 2*style.Padding.X)
	c.h = maxf(bounds.H-2*style.Padding.Y, 2*style.Padding.Y)
	c.addSlot(typ, color, highlight, count, lo, hi, style.ShowMarkers)

	out := &win.buffer
	if style.Background.Type == StyleItemImageType {
		out.DrawImage(bounds, style.Background.Image, ColorWhite)
	} else {
		out.FillRect(bounds, style.Rounding, style.BorderColor)
		out.FillRect(bounds.Shrink(style.Border), style.Rounding, style.Background.Color)
	}
	return true
}

// ChartAddSlot adds another data series to the open chart.
func (ctx *Context) ChartAddSlot(typ ChartType, count int, lo, hi float32) {
	ctx.ChartAddSlotColored(typ, ctx.style.Chart.Color, ctx.style.Chart.SelectedColor, count, lo, hi)
}

// ChartAddSlotColored is ChartAddSlot with explicit colors.
func (ctx *Context) ChartAddSlotColored(typ ChartType, color, highlight Color, count int, lo, hi float32) {
	if !ctx.requireWindow("ChartAddSlot") {
		return
	}
	ctx.current.layout.chart.addSlot(typ, color, highlight, count, lo, hi, ctx.style.Chart.ShowMarkers)
}

// ChartPush adds a value to the first series.
func (ctx *Context) ChartPush(v float32) ChartEvent { return ctx.ChartPushSlot(v, 0) }

// ChartPushSlot adds a value to the given series and reports whether the
// pointer hovers or clicks it.
func (ctx *Context) ChartPushSlot(v float32, slot int) ChartEvent {
	if !ctx.requireWindow("ChartPush") {
		return 0
	}
	c := &ctx.current.layout.chart
	if slot < 0 || slot >= c.slot {
		return 0
	}
	s := &c.slots[slot]
	if s.index >= s.count || s.rng == 0 {
		return 0
	}
	if s.typ == ChartColumn {
		return ctx.chartPushColumn(c, s, v)
	}
	return ctx.chartPushLine(c, s, v)
}

func (ctx *Context) chartPushLine(c *chart, s *chartSlot, v float32) ChartEvent {
	win := ctx.current
	in := &ctx.input
	out := &win.buffer
	rom := win.layout.flags&WindowROM != 0
	left := &in.Mouse.Buttons[ButtonLeft]
	ratio := (v - s.min) / s.rng
	var ev ChartEvent

	if s.index == 0 {
		// the first point has no line into it
		s.last = Vec2{X: c.x, Y: c.y + c.h - ratio*c.h}
		bounds := Rect{X: s.last.X - 2, Y: s.last.Y - 2, W: 4, H: 4}
		color := s.color
		if !rom && (Rect{X: s.last.X - 3, Y: s.last.Y - 3, W: 6, H: 6}).Contains(in.Mouse.Pos) {
			if in.IsMouseHoveringRect(bounds) {
				ev = ChartHovering
			}
			if left.Down && left.Clicked > 0 {
				ev |= ChartClicked
			}
			color = s.highlight
		}
		if s.showMarkers {
			out.FillRect(bounds, 0, color)
		}
		s.index++
		return ev
	}

	step := c.w / float32(s.count)
	color := s.color
	cur := Vec2{X: c.x + step*float32(s.index), Y: c.y + c.h - ratio*c.h}
	out.StrokeLine(s.last.X, s.last.Y, cur.X, cur.Y, 1, color)
	if !rom && in.IsMouseHoveringRect(Rect{X: cur.X - 3, Y: cur.Y - 3, W: 6, H: 6}) {
		ev = ChartHovering
		if !left.Down && left.Clicked > 0 {
			ev |= ChartClicked
		}
		color = s.highlight
	}
	if s.showMarkers {
		out.FillRect(Rect{X: cur.X - 2, Y: cur.Y - 2, W: 4, H: 4}, 0, color)
	}
	s.last = cur
	s.index++
	return ev
}

func (ctx *Context) chartPushColumn(c *chart, s *chartSlot, v float32) ChartEvent {
	win := ctx.current
	in := &ctx.input
	var ev ChartEvent

	item := Rect{W: (c.w - float32(s.count-1)) / float32(s.count)}
	item.H = c.h * absf(v/s.rng)
	if v >= 0 {
		ratio := (v + absf(s.min)) / absf(s.rng)
		item.Y = c.y + c.h - c.h*ratio
	} else {
		ratio := (v - s.max) / s.rng
		item.Y = c.y + c.h*absf(ratio) - item.H
	}
	item.X = c.x + float32(s.index)*item.W + float32(s.index)

	color := s.color
	if win.layout.flags&WindowROM == 0 && item.Contains(in.Mouse.Pos) {
		left := &in.Mouse.Buttons[ButtonLeft]
		ev = ChartHovering
		if !left.Down && left.Clicked > 0 {
			ev |= ChartClicked
		}
		color = s.highlight
	}
	win.buffer.FillRect(item, 0, color)
	s.index++
	return ev
}

// ChartEnd finishes the chart.
func (ctx *Context) ChartEnd() {
	if !ctx.requireWindow("ChartEnd") {
		return
	}
	ctx.current.layout.chart = chart{}
}

// Plot draws values as a chart scaled to their range.
func (ctx *Context) Plot(typ ChartType, values []float32) {
	if len(values) == 0 || !ctx.requireWindow("Plot") {
		return
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = minf(lo, v), maxf(hi, v)
	}
	if ctx.ChartBegin(typ, len(values), lo, hi) {
		for _, v := range values {
			ctx.ChartPush(v)
		}
		ctx.ChartEnd()
	}
}
