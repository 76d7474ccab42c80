package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize   = 64 * 1024 * 1024 // 64MB
	MaxParamCount   = 1_000_000
	MaxParamNameLen = 1024
)

// ValidateParamOffsets checks for overlapping, out-of-bounds or malformed entries.
func ValidateParamOffsets(params []ParamMeta, dataSize int64) error {
	sorted := make([]ParamMeta, len(params))
	copy(sorted, params)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, p := range sorted {
		if p.Offset < 0 || p.Size != valueSize {
			return &ValidationError{
				Type:    "bad_entry",
				Param:   p.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (want non-negative offset and size %d)", p.Offset, p.Size, valueSize),
			}
		}

		// Written this way so a huge Offset cannot overflow the sum.
		if p.Offset > dataSize-p.Size {
			return &ValidationError{
				Type:    "out_of_bounds",
				Param:   p.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", p.Offset, p.Size, dataSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if p.Offset+p.Size > next.Offset {
				return &ValidationError{
					Type:   "offset_overlap",
					Param:  p.Name,
					Param2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						p.Offset, p.Offset+p.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}

	return nil
}

// ValidateParamName rejects empty, oversized or non-printable names.
func ValidateParamName(name string) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty parameter name"}
	}
	if len(name) > MaxParamNameLen {
		return &ValidationError{
			Type:    "name_too_long",
			Param:   name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxParamNameLen),
		}
	}
	if strings.ContainsFunc(name, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return &ValidationError{
			Type:    "invalid_name",
			Param:   name,
			Details: "contains control characters",
		}
	}
	return nil
}

// ValidateHeader checks the parameter table against the data section size.
func ValidateHeader(h *Header, dataSize int64) error {
	if len(h.Params) > MaxParamCount {
		return &ValidationError{
			Type:    "too_many_params",
			Details: fmt.Sprintf("got %d, max %d", len(h.Params), MaxParamCount),
		}
	}

	seen := make(map[string]struct{}, len(h.Params))
	for _, p := range h.Params {
		if err := ValidateParamName(p.Name); err != nil {
			return err
		}
		if _, dup := seen[p.Name]; dup {
			return &ValidationError{Type: "duplicate_name", Param: p.Name, Details: "listed twice"}
		}
		seen[p.Name] = struct{}{}
	}

	return ValidateParamOffsets(h.Params, dataSize)
}
