// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// RowMax computes and returns the maximum of each row of a matrix
func RowMax(matrix *mat.Dense) *mat.VecDense {
	r, _ := matrix.Dims()
	rowMax := make([]float64, r)

	for i := 0; i < r; i++ {
		rowMax[i] = floats.Max(matrix.RawRowView(i))
	}
	return mat.NewVecDense(r, rowMax)
}
