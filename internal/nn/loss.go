package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MaxMarginLoss computes the SVM max-margin (hinge) loss for ±1 labels.
//
// Loss = mean(max(0, 1 - yᵢ·predᵢ))
//
// Predictions on the right side of the margin contribute nothing.
func MaxMarginLoss(preds []autodiff.Value, labels []float64) autodiff.Value {
	checkBatch("MaxMarginLoss", preds, labels)

	terms := make([]autodiff.Value, len(preds))
	for i, p := range preds {
		terms[i] = autodiff.ScalarSub(1, p.MulScalar(labels[i])).ReLU()
	}
	return autodiff.Sum(terms...).DivScalar(float64(len(terms)))
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predᵢ - targetᵢ)²)
func MSELoss(preds []autodiff.Value, targets []float64) autodiff.Value {
	checkBatch("MSELoss", preds, targets)

	terms := make([]autodiff.Value, len(preds))
	for i, p := range preds {
		diff := p.SubScalar(targets[i])
		terms[i] = diff.Mul(diff)
	}
	return autodiff.Sum(terms...).DivScalar(float64(len(terms)))
}

// checkBatch panics on an empty or mismatched batch.
func checkBatch(name string, preds []autodiff.Value, targets []float64) {
	if len(preds) == 0 {
		panic(name + ": empty batch")
	}
	if len(preds) != len(targets) {
		panic(fmt.Sprintf("%s: %d predictions but %d targets", name, len(preds), len(targets)))
	}
}
