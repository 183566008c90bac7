// Package utils implements small generic helpers shared across the module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// MaxAbs returns the largest absolute value in s, or 0 if s is empty.
func MaxAbs[T constraints.Float](s []T) (m T) {
	for _, v := range s {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return
}
