package nk

// Input filters for edit fields.

// FilterDefault accepts every rune.
func FilterDefault(*TextEdit, rune) bool { return true }

// FilterASCII accepts 7-bit ASCII.
func FilterASCII(_ *TextEdit, r rune) bool { return r <= 128 }

// FilterFloat accepts digits, a decimal point and a minus sign.
func FilterFloat(_ *TextEdit, r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '-'
}

// FilterDecimal accepts digits and a minus sign.
func FilterDecimal(_ *TextEdit, r rune) bool {
	return (r >= '0' && r <= '9') || r == '-'
}

// FilterHex accepts hexadecimal digits.
func FilterHex(_ *TextEdit, r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// FilterOct accepts octal digits.
func FilterOct(_ *TextEdit, r rune) bool { return r >= '0' && r <= '7' }

// FilterBinary accepts '0' and '1'.
func FilterBinary(_ *TextEdit, r rune) bool { return r == '0' || r == '1' }
