package imagepkg

// nameUnitPx converts visual width units to pixels for chip placement.
const nameUnitPx = 45

// Measure estimates the relative width of s without consulting a font:
// CJK unified ideographs count 1.0, every other rune 0.5.
func Measure(s string) float64 {
	var n float64
	for _, r := range s {
		if r >= '\u4e00' && r <= '\u9fff' {
			n += 1
		} else {
			n += 0.5
		}
	}
	return n
}

// NameOffset is the horizontal space reserved for a nickname.
func NameOffset(s string) float64 {
	return Measure(s) * nameUnitPx
}
