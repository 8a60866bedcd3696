package nk

import (
	"errors"
	"fmt"
)

// Programmer errors. In strict mode (the default) they are raised as panics
// wrapping one of these values, so callers can recover and match them with
// errors.Is.
var (
	ErrNoActiveWindow  = errors.New("nk: no active window")
	ErrNestedBegin     = errors.New("nk: window begin nested inside another window")
	ErrWindowNotEnded  = errors.New("nk: window begun twice in one frame")
	ErrTreeUnderflow   = errors.New("nk: tree pop without matching push")
	ErrTreeNotPopped   = errors.New("nk: tree push without matching pop")
	ErrPopupInPopup    = errors.New("nk: popups cannot open popups")
	ErrPanelNotEnded   = errors.New("nk: popup or group still open at window end")
	ErrNotInPopup      = errors.New("nk: popup call outside a popup")
	ErrNotInGroup      = errors.New("nk: group end outside a group")
	ErrTemplateColumns = errors.New("nk: too many template columns")
	ErrLayoutRatios    = errors.New("nk: ratio count does not match column count")
	ErrUnknownCommand  = errors.New("nk: unknown draw command")
	ErrStackUnderflow  = errors.New("nk: style stack pop without push")
	ErrStackOverflow   = errors.New("nk: style stack full")
	ErrStackOrder      = errors.New("nk: style stack restored out of order")
)

// Recoverable errors.
var (
	ErrBufferFull   = errors.New("nk: buffer full")
	ErrInvalidTheme = errors.New("nk: invalid theme")
)

// violation reports a broken call-order contract. It panics in strict mode
// and otherwise logs and returns so the caller can degrade to a no-op.
func (ctx *Context) violation(err error, format string, args ...any) {
	if format != "" {
		err = fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	}
	if ctx.strict {
		panic(err)
	}
	ctx.log.Warn("contract violation", "err", err)
}

// requireWindow checks that a window bracket is open. It returns false when
// the call must be skipped.
func (ctx *Context) requireWindow(op string) bool {
	if ctx.current == nil || ctx.current.layout == nil {
		ctx.violation(ErrNoActiveWindow, "%s called outside Begin/End", op)
		return false
	}
	return true
}
