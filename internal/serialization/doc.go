// Package serialization saves and loads trained scalar parameters.
//
// Checkpoints use a small binary format:
//
//	Format Structure:
//	  [4 bytes: Magic "MGRD"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON, parameter names, offsets and metadata]
//	  [32 bytes: SHA-256 of the data section]
//	  [Data: float64 LE, one per parameter]
//
// Parameters are written in name order so the same state always produces the
// same bytes.
//
// Example usage:
//
//	state := nn.StateDict(model)
//	if err := serialization.WriteFile("moons.mgrd", state, map[string]string{"layers": "2,16,16,1"}); err != nil {
//	    log.Fatal(err)
//	}
//
//	ckpt, err := serialization.ReadFile("moons.mgrd")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = nn.LoadStateDict(model, ckpt.Params)
package serialization
