// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"fmt"

	"github.com/born-ml/micrograd/autodiff"
)

func Example() {
	g := autodiff.NewGraph()
	x := g.LeafLabeled(3, "x")
	y := x.Mul(x).Add(x)

	g.Backward(y)
	fmt.Println(y.Get(), x.Grad())
	// Output: 12 7
}

func ExampleGraph_Rewind() {
	g := autodiff.NewGraph()
	w := g.LeafLabeled(0.5, "w")

	for range 3 {
		mark := g.Mark()
		loss := w.SubScalar(2).Pow(2)
		g.ZeroGrad(loss)
		g.Backward(loss)
		w.Set(w.Get() - 0.25*w.Grad())
		g.Rewind(mark)
	}
	fmt.Println(g.Len(), w.Get())
	// Output: 1 1.8125
}
