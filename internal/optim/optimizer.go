// Package optim implements gradient-descent optimizers for scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//   - Schedules: learning-rate schedules such as LinearDecay
//
// Optimizers read each parameter's accumulated gradient and update its value
// in place, so graph nodes keep their identity across steps.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for epoch := range epochs {
//	    mark := g.Mark()
//	    loss := computeLoss(model, data)
//
//	    g.ZeroGrad(loss)
//	    g.Backward(loss)
//	    optimizer.Step()
//
//	    g.Rewind(mark)
//	}
package optim

import (
	"github.com/born-ml/micrograd/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate (used by schedules).
	SetLR(lr float64)
}

// zeroGrad clears the gradient of every parameter.
func zeroGrad(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
