package math

import "golang.org/x/exp/constraints"

// DivFloor divides, truncating toward zero.
func DivFloor[T constraints.Integer](dividend, divisor T) T {
	return dividend / divisor
}
