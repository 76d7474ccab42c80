package optim

// Schedule maps a step index to a learning rate.
type Schedule interface {
	LR(step int) float64
}

// Constant is a schedule that always returns the same rate.
type Constant float64

// LR implements Schedule.
func (c Constant) LR(int) float64 {
	return float64(c)
}

// LinearDecay interpolates linearly from Start at step 0 to End at step Steps.
// Steps past the end keep End.
//
// LinearDecay{Start: 1.0, End: 0.1, Steps: 100} gives lr = 1.0 - 0.9*k/100.
type LinearDecay struct {
	Start float64
	End   float64
	Steps int
}

// LR implements Schedule.
func (d LinearDecay) LR(step int) float64 {
	if d.Steps <= 0 || step >= d.Steps {
		return d.End
	}
	if step <= 0 {
		return d.Start
	}
	return d.Start + (d.End-d.Start)*float64(step)/float64(d.Steps)
}

// Apply sets the optimizer's learning rate for the given step.
func Apply(opt Optimizer, s Schedule, step int) float64 {
	lr := s.LR(step)
	opt.SetLR(lr)
	return lr
}
