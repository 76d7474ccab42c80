package serialization

// Format constants.
const (
	MagicBytes    = "MGRD"
	FormatVersion = uint32(1)
	valueSize     = 8 // float64
)

// Header is the JSON header of a checkpoint.
type Header struct {
	Params   []ParamMeta       `json:"params"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ParamMeta locates one parameter in the data section.
type ParamMeta struct {
	Name   string `json:"name"`
	Offset int64  `json:"offset"` // Byte offset from the start of the data section
	Size   int64  `json:"size"`   // Bytes; always 8 for a float64 scalar
}

// Checkpoint is a decoded checkpoint.
type Checkpoint struct {
	Params   map[string]float64
	Metadata map[string]string
}
