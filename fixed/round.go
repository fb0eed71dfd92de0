package fixed

// Floor returns the largest integer-valued Value not greater than x. The
// integer-part mask already truncates toward negative infinity in two's
// complement; the correction step guards the convention that the result
// never exceeds x.
func Floor(x Value) Value {
	m := x.IntPart()
	if m > x {
		m = m.Sub(One)
	}
	return m
}

// Ceil returns the smallest integer-valued Value not less than x.
func Ceil(x Value) Value {
	m := x.IntPart()
	if m < x {
		m = m.Add(One)
	}
	return m
}

// Round returns x rounded half up to the nearest integer-valued Value, the
// same convention the range reductions use internally.
func Round(x Value) Value {
	return Floor(x.Add(Half))
}
