package nk

// SymbolType selects a built-in glyph drawn from primitives.
type SymbolType uint8

const (
	SymbolNone SymbolType = iota
	SymbolX
	SymbolUnderscore
	SymbolCircleSolid
	SymbolCircleOutline
	SymbolRectSolid
	SymbolRectOutline
	SymbolTriangleUp
	SymbolTriangleDown
	SymbolTriangleLeft
	SymbolTriangleRight
	SymbolPlus
	SymbolMinus
)

// TextAlign positions text inside its bounds.
type TextAlign uint32

const (
	TextAlignLeft     TextAlign = 1 << iota
	TextAlignCentered           // Horizontally centered
	TextAlignRight
	TextAlignTop
	TextAlignMiddle // Vertically centered
	TextAlignBottom

	TextLeft     = TextAlignMiddle | TextAlignLeft
	TextCentered = TextAlignMiddle | TextAlignCentered
	TextRight    = TextAlignMiddle | TextAlignRight
)

// HeaderAlign places the window header buttons.
type HeaderAlign uint8

const (
	HeaderLeft HeaderAlign = iota
	HeaderRight
)

// StyleItemType tells whether a StyleItem paints a color or an image.
type StyleItemType uint8

const (
	StyleItemColorType StyleItemType = iota
	StyleItemImageType
)

// StyleItem is a background: a flat color or an image.
type StyleItem struct {
	Type  StyleItemType
	Color Color
	Image Image
}

// StyleItemColor returns a flat color background.
func StyleItemColor(c Color) StyleItem {
	return StyleItem{Type: StyleItemColorType, Color: c}
}

// StyleItemImage returns an image background.
func StyleItemImage(img Image) StyleItem {
	return StyleItem{Type: StyleItemImageType, Image: img}
}

// StyleText is the style of plain labels.
type StyleText struct {
	Color   Color
	Padding Vec2
}

// StyleButton is the style of push buttons.
type StyleButton struct {
	Normal      StyleItem
	Hover       StyleItem
	Active      StyleItem
	BorderColor Color

	TextBackground Color
	TextNormal     Color
	TextHover      Color
	TextActive     Color
	TextAlignment  TextAlign

	Border       float32
	Rounding     float32
	Padding      Vec2
	ImagePadding Vec2
	TouchPadding Vec2
}

// StyleToggle is the style of checkboxes.
type StyleToggle struct {
	Normal       StyleItem
	Hover        StyleItem
	Active       StyleItem
	BorderColor  Color
	CursorNormal StyleItem
	CursorHover  StyleItem

	TextNormal     Color
	TextHover      Color
	TextActive     Color
	TextBackground Color
	TextAlignment  TextAlign

	Padding      Vec2
	TouchPadding Vec2
	Spacing      float32
	Border       float32
}

// StyleSelectable is the style of selectable labels.
type StyleSelectable struct {
	Normal        StyleItem
	Hover         StyleItem
	Pressed       StyleItem
	NormalActive  StyleItem
	HoverActive   StyleItem
	PressedActive StyleItem

	TextNormal        Color
	TextHover         Color
	TextPressed       Color
	TextNormalActive  Color
	TextHoverActive   Color
	TextPressedActive Color
	TextBackground    Color
	TextAlignment     TextAlign

	Rounding     float32
	Padding      Vec2
	TouchPadding Vec2
}

// StyleSlider is the style of sliders.
type StyleSlider struct {
	Normal      StyleItem
	Hover       StyleItem
	Active      StyleItem
	BorderColor Color

	BarNormal Color
	BarHover  Color
	BarActive Color
	BarFilled Color

	CursorNormal StyleItem
	CursorHover  StyleItem
	CursorActive StyleItem

	Border     float32
	Rounding   float32
	BarHeight  float32
	Padding    Vec2
	Spacing    Vec2
	CursorSize Vec2
}

// StyleScrollbar is the style of panel scrollbars.
type StyleScrollbar struct {
	Normal      StyleItem
	Hover       StyleItem
	Active      StyleItem
	BorderColor Color

	CursorNormal      StyleItem
	CursorHover       StyleItem
	CursorActive      StyleItem
	CursorBorderColor Color

	Border         float32
	Rounding       float32
	BorderCursor   float32
	RoundingCursor float32
	Padding        Vec2
}

// StyleEdit is the style of edit fields.
type StyleEdit struct {
	Normal      StyleItem
	Hover       StyleItem
	Active      StyleItem
	BorderColor Color
	Scrollbar   StyleScrollbar

	CursorNormal     Color
	CursorHover      Color
	CursorTextNormal Color
	CursorTextHover  Color

	TextNormal Color
	TextHover  Color
	TextActive Color

	SelectedNormal     Color
	SelectedHover      Color
	SelectedTextNormal Color
	SelectedTextHover  Color

	Border        float32
	Rounding      float32
	CursorSize    float32
	ScrollbarSize Vec2
	Padding       Vec2
	RowPadding    float32
}

// StyleChart is the style of line and column charts.
type StyleChart struct {
	Background    StyleItem
	BorderColor   Color
	SelectedColor Color
	Color         Color

	Border      float32
	Rounding    float32
	Padding     Vec2
	ShowMarkers bool
}

// StyleCombo is the style of combo box headers.
type StyleCombo struct {
	Normal      StyleItem
	Hover       StyleItem
	Active      StyleItem
	BorderColor Color

	LabelNormal Color
	LabelHover  Color
	LabelActive Color

	Button    StyleButton
	SymNormal SymbolType
	SymHover  SymbolType
	SymActive SymbolType

	Border         float32
	Rounding       float32
	ContentPadding Vec2
	ButtonPadding  Vec2
	Spacing        Vec2
}

// StyleTab is the style of tree tabs and nodes.
type StyleTab struct {
	Background  StyleItem
	BorderColor Color
	Text        Color

	TabMaximizeButton  StyleButton
	TabMinimizeButton  StyleButton
	NodeMaximizeButton StyleButton
	NodeMinimizeButton StyleButton
	SymMinimize        SymbolType
	SymMaximize        SymbolType

	Border   float32
	Rounding float32
	Indent   float32
	Padding  Vec2
	Spacing  Vec2
}

// StyleWindowHeader is the style of window title bars.
type StyleWindowHeader struct {
	Normal StyleItem
	Hover  StyleItem
	Active StyleItem

	CloseButton    StyleButton
	MinimizeButton StyleButton
	CloseSymbol    SymbolType
	MinimizeSymbol SymbolType
	MaximizeSymbol SymbolType

	LabelNormal Color
	LabelHover  Color
	LabelActive Color

	Align        HeaderAlign
	Padding      Vec2
	LabelPadding Vec2
	Spacing      Vec2
}

// StyleWindow is the style of windows and every panel kind inside them.
type StyleWindow struct {
	Header          StyleWindowHeader
	FixedBackground StyleItem
	Background      Color

	BorderColor           Color
	PopupBorderColor      Color
	ComboBorderColor      Color
	ContextualBorderColor Color
	MenuBorderColor       Color
	GroupBorderColor      Color
	TooltipBorderColor    Color
	Scaler                StyleItem

	Border           float32
	ComboBorder      float32
	ContextualBorder float32
	MenuBorder       float32
	GroupBorder      float32
	TooltipBorder    float32
	PopupBorder      float32

	MinRowHeightPadding float32
	Rounding            float32
	Spacing             Vec2
	ScrollbarSize       Vec2
	MinSize             Vec2

	Padding           Vec2
	GroupPadding      Vec2
	PopupPadding      Vec2
	ComboPadding      Vec2
	ContextualPadding Vec2
	MenuPadding       Vec2
	TooltipPadding    Vec2
}

// Style defines the visual appearance of every widget class.
type Style struct {
	Font Font

	Text             StyleText
	Button           StyleButton
	ContextualButton StyleButton
	MenuButton       StyleButton
	Checkbox         StyleToggle
	Selectable       StyleSelectable
	Slider           StyleSlider
	Edit             StyleEdit
	Chart            StyleChart
	ScrollH          StyleScrollbar
	ScrollV          StyleScrollbar
	Tab              StyleTab
	Combo            StyleCombo
	Window           StyleWindow
}

// ColorName indexes a ColorTable.
type ColorName int

const (
	ColorText ColorName = iota
	ColorWindow
	ColorHeader
	ColorBorder
	ColorButton
	ColorButtonHover
	ColorButtonActive
	ColorToggle
	ColorToggleHover
	ColorToggleCursor
	ColorSelect
	ColorSelectActive
	ColorSlider
	ColorSliderCursor
	ColorSliderCursorHover
	ColorSliderCursorActive
	ColorEdit
	ColorEditCursor
	ColorCombo
	ColorChart
	ColorChartColor
	ColorChartColorHighlight
	ColorScrollbar
	ColorScrollbarCursor
	ColorScrollbarCursorHover
	ColorScrollbarCursorActive
	ColorTabHeader
	ColorCount
)

var colorNames = [ColorCount]string{
	"text", "window", "header", "border", "button", "button_hover", "button_active",
	"toggle", "toggle_hover", "toggle_cursor", "select", "select_active",
	"slider", "slider_cursor", "slider_cursor_hover", "slider_cursor_active",
	"edit", "edit_cursor", "combo", "chart", "chart_color", "chart_color_highlight",
	"scrollbar", "scrollbar_cursor", "scrollbar_cursor_hover", "scrollbar_cursor_active",
	"tab_header",
}

// String returns the theme key of the color slot.
func (n ColorName) String() string {
	if n >= 0 && n < ColorCount {
		return colorNames[n]
	}
	return "unknown"
}

// ColorTable holds the base palette a Style is derived from.
type ColorTable [ColorCount]Color

// DefaultColorTable returns the built-in dark palette.
func DefaultColorTable() ColorTable {
	return ColorTable{
		ColorText:                  RGB(175, 175, 175),
		ColorWindow:                RGB(45, 45, 45),
		ColorHeader:                RGB(40, 40, 40),
		ColorBorder:                RGB(65, 65, 65),
		ColorButton:                RGB(50, 50, 50),
		ColorButtonHover:           RGB(40, 40, 40),
		ColorButtonActive:          RGB(35, 35, 35),
		ColorToggle:                RGB(100, 100, 100),
		ColorToggleHover:           RGB(120, 120, 120),
		ColorToggleCursor:          RGB(45, 45, 45),
		ColorSelect:                RGB(45, 45, 45),
		ColorSelectActive:          RGB(35, 35, 35),
		ColorSlider:                RGB(38, 38, 38),
		ColorSliderCursor:          RGB(100, 100, 100),
		ColorSliderCursorHover:     RGB(120, 120, 120),
		ColorSliderCursorActive:    RGB(150, 150, 150),
		ColorEdit:                  RGB(38, 38, 38),
		ColorEditCursor:            RGB(175, 175, 175),
		ColorCombo:                 RGB(45, 45, 45),
		ColorChart:                 RGB(120, 120, 120),
		ColorChartColor:            RGB(45, 45, 45),
		ColorChartColorHighlight:   RGB(255, 0, 0),
		ColorScrollbar:             RGB(40, 40, 40),
		ColorScrollbarCursor:       RGB(100, 100, 100),
		ColorScrollbarCursorHover:  RGB(120, 120, 120),
		ColorScrollbarCursorActive: RGB(150, 150, 150),
		ColorTabHeader:             RGB(40, 40, 40),
	}
}

// DefaultStyle returns the style derived from DefaultColorTable. Its Font
// is nil; the context supplies one.
func DefaultStyle() Style {
	return StyleFromTable(DefaultColorTable())
}

// StyleFromTable derives every widget style from a palette.
func StyleFromTable(t ColorTable) Style {
	var s Style

	s.Text = StyleText{Color: t[ColorText]}

	s.Button = StyleButton{
		Normal:         StyleItemColor(t[ColorButton]),
		Hover:          StyleItemColor(t[ColorButtonHover]),
		Active:         StyleItemColor(t[ColorButtonActive]),
		BorderColor:    t[ColorBorder],
		TextBackground: t[ColorButton],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Padding:        Vec2{X: 2, Y: 2},
		Border:         1,
		Rounding:       4,
	}

	s.ContextualButton = StyleButton{
		Normal:         StyleItemColor(t[ColorWindow]),
		Hover:          StyleItemColor(t[ColorButtonHover]),
		Active:         StyleItemColor(t[ColorButtonActive]),
		BorderColor:    t[ColorWindow],
		TextBackground: t[ColorWindow],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Padding:        Vec2{X: 2, Y: 2},
	}

	s.MenuButton = StyleButton{
		Normal:         StyleItemColor(t[ColorWindow]),
		Hover:          StyleItemColor(t[ColorWindow]),
		Active:         StyleItemColor(t[ColorWindow]),
		BorderColor:    t[ColorWindow],
		TextBackground: t[ColorWindow],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Padding:        Vec2{X: 2, Y: 2},
		Rounding:       1,
	}

	s.Checkbox = StyleToggle{
		Normal:         StyleItemColor(t[ColorToggle]),
		Hover:          StyleItemColor(t[ColorToggleHover]),
		Active:         StyleItemColor(t[ColorToggleHover]),
		CursorNormal:   StyleItemColor(t[ColorToggleCursor]),
		CursorHover:    StyleItemColor(t[ColorToggleCursor]),
		TextBackground: t[ColorWindow],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextLeft,
		Padding:        Vec2{X: 2, Y: 2},
		Spacing:        4,
	}

	s.Selectable = StyleSelectable{
		Normal:            StyleItemColor(t[ColorSelect]),
		Hover:             StyleItemColor(t[ColorSelect]),
		Pressed:           StyleItemColor(t[ColorSelect]),
		NormalActive:      StyleItemColor(t[ColorSelectActive]),
		HoverActive:       StyleItemColor(t[ColorSelectActive]),
		PressedActive:     StyleItemColor(t[ColorSelectActive]),
		TextNormal:        t[ColorText],
		TextHover:         t[ColorText],
		TextPressed:       t[ColorText],
		TextNormalActive:  t[ColorText],
		TextHoverActive:   t[ColorText],
		TextPressedActive: t[ColorText],
		TextAlignment:     TextLeft,
		Padding:           Vec2{X: 2, Y: 2},
	}

	s.Slider = StyleSlider{
		BarNormal:    t[ColorSlider],
		BarHover:     t[ColorSlider],
		BarActive:    t[ColorSlider],
		BarFilled:    t[ColorSliderCursor],
		CursorNormal: StyleItemColor(t[ColorSliderCursor]),
		CursorHover:  StyleItemColor(t[ColorSliderCursorHover]),
		CursorActive: StyleItemColor(t[ColorSliderCursorActive]),
		CursorSize:   Vec2{X: 16, Y: 16},
		Padding:      Vec2{X: 2, Y: 2},
		Spacing:      Vec2{X: 2, Y: 2},
		BarHeight:    8,
	}

	s.ScrollH = StyleScrollbar{
		Normal:            StyleItemColor(t[ColorScrollbar]),
		Hover:             StyleItemColor(t[ColorScrollbar]),
		Active:            StyleItemColor(t[ColorScrollbar]),
		BorderColor:       t[ColorScrollbar],
		CursorNormal:      StyleItemColor(t[ColorScrollbarCursor]),
		CursorHover:       StyleItemColor(t[ColorScrollbarCursorHover]),
		CursorActive:      StyleItemColor(t[ColorScrollbarCursorActive]),
		CursorBorderColor: t[ColorScrollbar],
	}
	s.ScrollV = s.ScrollH

	s.Edit = StyleEdit{
		Normal:             StyleItemColor(t[ColorEdit]),
		Hover:              StyleItemColor(t[ColorEdit]),
		Active:             StyleItemColor(t[ColorEdit]),
		BorderColor:        t[ColorBorder],
		Scrollbar:          s.ScrollV,
		CursorNormal:       t[ColorText],
		CursorHover:        t[ColorText],
		CursorTextNormal:   t[ColorEdit],
		CursorTextHover:    t[ColorEdit],
		TextNormal:         t[ColorText],
		TextHover:          t[ColorText],
		TextActive:         t[ColorText],
		SelectedNormal:     t[ColorText],
		SelectedHover:      t[ColorText],
		SelectedTextNormal: t[ColorEdit],
		SelectedTextHover:  t[ColorEdit],
		ScrollbarSize:      Vec2{X: 10, Y: 10},
		Padding:            Vec2{X: 4, Y: 4},
		RowPadding:         2,
		CursorSize:         4,
		Border:             1,
	}

	s.Chart = StyleChart{
		Background:    StyleItemColor(t[ColorChart]),
		BorderColor:   t[ColorBorder],
		SelectedColor: t[ColorChartColorHighlight],
		Color:         t[ColorChartColor],
		Padding:       Vec2{X: 4, Y: 4},
		ShowMarkers:   true,
	}

	comboButton := StyleButton{
		Normal:         StyleItemColor(t[ColorCombo]),
		Hover:          StyleItemColor(t[ColorCombo]),
		Active:         StyleItemColor(t[ColorCombo]),
		TextBackground: t[ColorCombo],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Padding:        Vec2{X: 2, Y: 2},
	}
	s.Combo = StyleCombo{
		Normal:         StyleItemColor(t[ColorCombo]),
		Hover:          StyleItemColor(t[ColorCombo]),
		Active:         StyleItemColor(t[ColorCombo]),
		BorderColor:    t[ColorBorder],
		LabelNormal:    t[ColorText],
		LabelHover:     t[ColorText],
		LabelActive:    t[ColorText],
		Button:         comboButton,
		SymNormal:      SymbolTriangleDown,
		SymHover:       SymbolTriangleDown,
		SymActive:      SymbolTriangleDown,
		ContentPadding: Vec2{X: 4, Y: 4},
		ButtonPadding:  Vec2{Y: 4},
		Spacing:        Vec2{X: 4},
		Border:         1,
	}

	tabButton := StyleButton{
		Normal:         StyleItemColor(t[ColorTabHeader]),
		Hover:          StyleItemColor(t[ColorTabHeader]),
		Active:         StyleItemColor(t[ColorTabHeader]),
		TextBackground: t[ColorTabHeader],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Padding:        Vec2{X: 2, Y: 2},
	}
	nodeButton := tabButton
	nodeButton.Normal = StyleItemColor(t[ColorWindow])
	nodeButton.Hover = StyleItemColor(t[ColorWindow])
	nodeButton.Active = StyleItemColor(t[ColorWindow])
	nodeButton.TextBackground = t[ColorWindow]
	s.Tab = StyleTab{
		Background:         StyleItemColor(t[ColorTabHeader]),
		BorderColor:        t[ColorBorder],
		Text:               t[ColorText],
		TabMaximizeButton:  tabButton,
		TabMinimizeButton:  tabButton,
		NodeMaximizeButton: nodeButton,
		NodeMinimizeButton: nodeButton,
		SymMinimize:        SymbolTriangleRight,
		SymMaximize:        SymbolTriangleDown,
		Padding:            Vec2{X: 4, Y: 4},
		Spacing:            Vec2{X: 4, Y: 4},
		Indent:             10,
		Border:             1,
	}

	headerButton := StyleButton{
		Normal:         StyleItemColor(t[ColorHeader]),
		Hover:          StyleItemColor(t[ColorHeader]),
		Active:         StyleItemColor(t[ColorHeader]),
		TextBackground: t[ColorHeader],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
	}
	s.Window = StyleWindow{
		Header: StyleWindowHeader{
			Normal:         StyleItemColor(t[ColorHeader]),
			Hover:          StyleItemColor(t[ColorHeader]),
			Active:         StyleItemColor(t[ColorHeader]),
			CloseButton:    headerButton,
			MinimizeButton: headerButton,
			CloseSymbol:    SymbolX,
			MinimizeSymbol: SymbolMinus,
			MaximizeSymbol: SymbolPlus,
			LabelNormal:    t[ColorText],
			LabelHover:     t[ColorText],
			LabelActive:    t[ColorText],
			Align:          HeaderRight,
			Padding:        Vec2{X: 4, Y: 4},
			LabelPadding:   Vec2{X: 4, Y: 4},
		},
		FixedBackground:       StyleItemColor(t[ColorWindow]),
		Background:            t[ColorWindow],
		BorderColor:           t[ColorBorder],
		PopupBorderColor:      t[ColorBorder],
		ComboBorderColor:      t[ColorBorder],
		ContextualBorderColor: t[ColorBorder],
		MenuBorderColor:       t[ColorBorder],
		GroupBorderColor:      t[ColorBorder],
		TooltipBorderColor:    t[ColorBorder],
		Scaler:                StyleItemColor(t[ColorText]),
		Border:                2,
		ComboBorder:           1,
		ContextualBorder:      1,
		MenuBorder:            1,
		GroupBorder:           1,
		TooltipBorder:         1,
		PopupBorder:           1,
		MinRowHeightPadding:   8,
		Spacing:               Vec2{X: 4, Y: 4},
		ScrollbarSize:         Vec2{X: 10, Y: 10},
		MinSize:               Vec2{X: 64, Y: 64},
		Padding:               Vec2{X: 4, Y: 4},
		GroupPadding:          Vec2{X: 4, Y: 4},
		PopupPadding:          Vec2{X: 4, Y: 4},
		ComboPadding:          Vec2{X: 4, Y: 4},
		ContextualPadding:     Vec2{X: 4, Y: 4},
		MenuPadding:           Vec2{X: 4, Y: 4},
		TooltipPadding:        Vec2{X: 4, Y: 4},
	}
	return s
}
