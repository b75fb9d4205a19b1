// Package floatutils provides utilities for working with floats
package floatutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// MaxSlice gets the maximum value and the indices of all values equal
// to the maximum in a slice of float64.
//
// An error is returned if the slice is empty or if no element compares
// equal to the maximum, which happens when the slice holds a NaN.
func MaxSlice(values []float64) (max float64, indices []int, err error) {
	if len(values) == 0 {
		return 0, nil, fmt.Errorf("maxSlice: empty slice")
	}
	if floats.HasNaN(values) {
		return math.NaN(), nil, fmt.Errorf("maxSlice: NaN in %v", values)
	}

	max = floats.Max(values)
	for i, value := range values {
		if value == max {
			indices = append(indices, i)
		}
	}

	if len(indices) == 0 {
		return max, nil, fmt.Errorf("maxSlice: no element equal to max %v",
			max)
	}
	return max, indices, nil
}
