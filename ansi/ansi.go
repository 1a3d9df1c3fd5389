// Package ansi builds ANSI SGR (Select Graphic Rendition) escape sequences
// for terminal colors, covering the 8-bit indexed palette and 24-bit true
// color, and detects whether the attached output should receive them.
package ansi

import "strconv"

// Escape wraps code in an SGR sequence: ESC, '[', the code, 'm'.
func Escape(code string) string {
	return "\x1b[" + code + "m"
}

// Reset returns the sequence that clears all active SGR attributes.
// This is the empty escape, exactly "\x1b[m".
func Reset() string {
	return Escape("")
}

// ForegroundColor8Bit returns the sequence selecting a foreground color from
// the 256-color indexed palette.
func ForegroundColor8Bit(color uint8) string {
	return Escape("38;5;" + strconv.Itoa(int(color)))
}

// BackgroundColor8Bit returns the sequence selecting a background color from
// the 256-color indexed palette.
func BackgroundColor8Bit(color uint8) string {
	return Escape("48;5;" + strconv.Itoa(int(color)))
}

// ForegroundTrueColor returns the sequence selecting a 24-bit foreground
// color from its red, green and blue components.
func ForegroundTrueColor(red, green, blue uint8) string {
	return Escape("38;2;" + strconv.Itoa(int(red)) + ";" + strconv.Itoa(int(green)) + ";" + strconv.Itoa(int(blue)))
}

// BackgroundTrueColor returns the sequence selecting a 24-bit background
// color from its red, green and blue components.
func BackgroundTrueColor(red, green, blue uint8) string {
	return Escape("48;2;" + strconv.Itoa(int(red)) + ";" + strconv.Itoa(int(green)) + ";" + strconv.Itoa(int(blue)))
}

// ForegroundTrueColorPacked is ForegroundTrueColor for a packed 0xAARRGGBB
// color. The alpha bits are ignored; terminals have no transparency.
func ForegroundTrueColorPacked(color uint32) string {
	return ForegroundTrueColor(RedComponent(color), GreenComponent(color), BlueComponent(color))
}

// BackgroundTrueColorPacked is BackgroundTrueColor for a packed 0xAARRGGBB
// color.
func BackgroundTrueColorPacked(color uint32) string {
	return BackgroundTrueColor(RedComponent(color), GreenComponent(color), BlueComponent(color))
}

// RedComponent extracts bits 16-23 of a packed 0xAARRGGBB color.
func RedComponent(color uint32) uint8 {
	return uint8((color & 0x00FF0000) >> 16)
}

// GreenComponent extracts bits 8-15 of a packed 0xAARRGGBB color.
func GreenComponent(color uint32) uint8 {
	return uint8((color & 0x0000FF00) >> 8)
}

// BlueComponent extracts bits 0-7 of a packed 0xAARRGGBB color.
func BlueComponent(color uint32) uint8 {
	return uint8(color & 0x000000FF)
}
