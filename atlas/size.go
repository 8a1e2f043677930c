package atlas

import "math"

// nextPowerOfTwo returns the smallest power of two >= n. Values below 2
// collapse to 1.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// initialAtlasSize estimates the starting side length: at least the largest
// single frame dimension, and at least the power-of-two ceiling of the square
// root of the total pixel area. Sufficient on average, not guaranteed; Build
// retries upward from here.
func initialAtlasSize(entries []entry) int {
	var maxSide, area int
	for _, e := range entries {
		b := e.img.Bounds()
		if b.Dx() > maxSide {
			maxSide = b.Dx()
		}
		if b.Dy() > maxSide {
			maxSide = b.Dy()
		}
		area += b.Dx() * b.Dy()
	}
	side := nextPowerOfTwo(int(math.Ceil(math.Sqrt(float64(area)))))
	if maxSide > side {
		return maxSide
	}
	return side
}
