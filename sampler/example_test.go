// SPDX-License-Identifier: MIT
package sampler_test

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stochrank/sampler"
)

func ExampleNew() {
	s, _ := sampler.New(sampler.Exponential, sampler.NewSource(2024))
	row, _ := s.Sample(5)

	fmt.Println(len(row))
	fmt.Printf("%.6f\n", floats.Sum(row))
	// Output:
	// 5
	// 1.000000
}
