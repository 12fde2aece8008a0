package common

func Lerp[T ~float32 | ~float64](a, b, t T) T {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp[T ~float32 | ~float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits an interpolation factor to [0, 1].
func Clamp01[T ~float32 | ~float64](t T) T {
	return Clamp(t, 0, 1)
}
