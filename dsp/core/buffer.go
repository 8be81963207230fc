package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Clone returns a copy of src. A nil or empty src yields an empty, non-nil slice.
func Clone(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Reverse reverses buf in place.
func Reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// OddExtend returns x extended by n samples on each side using odd
// reflection about the end points:
//
//	left:  2*x[0]   - x[n], ..., 2*x[0]   - x[1]
//	right: 2*x[N-1] - x[N-2], ..., 2*x[N-1] - x[N-1-n]
//
// n must satisfy 0 <= n < len(x).
func OddExtend(x []float64, n int) []float64 {
	size := len(x)
	out := make([]float64, size+2*n)
	first, last := x[0], x[size-1]
	for i := 0; i < n; i++ {
		out[i] = 2*first - x[n-i]
		out[n+size+i] = 2*last - x[size-2-i]
	}
	copy(out[n:], x)
	return out
}
