package types

import "math"

type Float64Slice []float64

func (s *Float64Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Float64Slice) Max() float64 {
	m := -math.MaxFloat64
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Float64Slice) Min() float64 {
	m := math.MaxFloat64
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

func (s Float64Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Float64Slice) Mean() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return s.Sum() / float64(len(s))
}

// Std returns the population standard deviation.
func (s Float64Slice) Std() float64 {
	if len(s) == 0 {
		return 0.0
	}

	mean := s.Mean()
	var sq float64
	for _, v := range s {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(s)))
}

// Diff returns the first-order difference. The first element is zero so the
// result stays parallel to the input.
func (s Float64Slice) Diff() Float64Slice {
	values := make(Float64Slice, 0, len(s))
	for i, v := range s {
		if i == 0 {
			values.Push(0)
			continue
		}
		values.Push(v - s[i-1])
	}
	return values
}

func (s Float64Slice) Tail(size int) Float64Slice {
	length := len(s)
	if length <= size {
		win := make(Float64Slice, length)
		copy(win, s)
		return win
	}

	win := make(Float64Slice, size)
	copy(win, s[length-size:])
	return win
}

func (s Float64Slice) Last() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return s[len(s)-1]
}
