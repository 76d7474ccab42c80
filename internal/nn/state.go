package nn

import (
	"errors"
	"fmt"
)

// ErrStateMismatch is returned (wrapped) when a state dict does not match a module.
var ErrStateMismatch = errors.New("state dict does not match module")

// StateDict returns the current value of every parameter of m, keyed by name.
func StateDict(m Module) map[string]float64 {
	params := m.Parameters()
	state := make(map[string]float64, len(params))
	for _, p := range params {
		state[p.Name()] = p.Get()
	}
	return state
}

// LoadStateDict sets every parameter of m from state. The key sets must match
// exactly; on error no parameter is modified.
func LoadStateDict(m Module, state map[string]float64) error {
	params := m.Parameters()
	if len(state) != len(params) {
		return fmt.Errorf("%w: module has %d parameters, state has %d", ErrStateMismatch, len(params), len(state))
	}
	for _, p := range params {
		if _, ok := state[p.Name()]; !ok {
			return fmt.Errorf("%w: missing parameter %q", ErrStateMismatch, p.Name())
		}
	}
	for _, p := range params {
		p.Set(state[p.Name()])
	}
	return nil
}
