package train

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/serialization"
)

// Checkpoint metadata keys.
const (
	metaLayers     = "layers"
	metaActivation = "activation"
)

// SaveModel writes the parameters of model to path together with the layer
// sizes and activation needed to rebuild it.
func SaveModel(path string, model *nn.MLP) error {
	layers := model.Layers()
	sizes := make([]string, 0, len(layers)+1)
	sizes = append(sizes, strconv.Itoa(model.Inputs()))
	for _, l := range layers {
		sizes = append(sizes, strconv.Itoa(l.Size()))
	}

	meta := map[string]string{
		metaLayers:     strings.Join(sizes, ","),
		metaActivation: layers[0].Activation().String(),
	}
	if err := serialization.WriteFile(path, nn.StateDict(model), meta); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}

// LoadModel rebuilds an MLP in g from a checkpoint written by SaveModel.
func LoadModel(path string, g *autodiff.Graph) (*nn.MLP, error) {
	ckpt, err := serialization.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	fields := strings.Split(ckpt.Metadata[metaLayers], ",")
	if len(fields) < 2 {
		return nil, fmt.Errorf("load model: bad layer sizes %q", ckpt.Metadata[metaLayers])
	}
	sizes := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("load model: bad layer size %q", f)
		}
		sizes[i] = n
	}
	act, err := nn.ParseActivation(ckpt.Metadata[metaActivation])
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	// Initial weights are overwritten by the checkpoint.
	model := nn.NewMLP(g, sizes[0], sizes[1:], act, nn.NewRand(0))
	if err := nn.LoadStateDict(model, ckpt.Params); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return model, nil
}
