package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
)

// Write encodes params and metadata as a checkpoint.
func Write(w io.Writer, params map[string]float64, metadata map[string]string) error {
	names := make([]string, 0, len(params))
	for name := range params {
		if err := ValidateParamName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		Params:   make([]ParamMeta, len(names)),
		Metadata: metadata,
	}
	data := make([]byte, 0, len(names)*valueSize)
	for i, name := range names {
		header.Params[i] = ParamMeta{Name: name, Offset: int64(len(data)), Size: valueSize}
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(params[name]))
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(MagicBytes); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, FormatVersion); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := bw.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	checksum := ComputeChecksum(data)
	if _, err := bw.Write(checksum[:]); err != nil {
		return fmt.Errorf("failed to write checksum: %w", err)
	}
	if _, err := bw.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	return bw.Flush()
}

// WriteFile writes a checkpoint to path, replacing any existing file.
func WriteFile(path string, params map[string]float64, metadata map[string]string) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, params, metadata); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	return file.Close()
}
