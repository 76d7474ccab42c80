// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers and learning-rate schedules for
// scalar models built with package nn.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Schedules: Constant and LinearDecay
//
// # Basic Usage
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1.0})
//	sched := optim.LinearDecay{Start: 1.0, End: 0.1, Steps: 100}
//
//	for step := range 100 {
//	    optim.Apply(opt, sched, step)
//	    loss := computeLoss()
//	    g.ZeroGrad(loss)
//	    g.Backward(loss)
//	    opt.Step()
//	}
package optim
