// Package batch loads calculation batches from JSON or YAML files and
// evaluates them through Calculators.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mamaar/complexcalc/pkg/types"
)

// Extensions lists the file extensions LoadFile understands.
var Extensions = []string{".json", ".yaml", ".yml"}

// IsBatchFile reports whether path has a supported batch extension.
func IsBatchFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadFile reads a batch request from a .json, .yaml or .yml file.
func LoadFile(path string) (*types.BatchRequest, error) {
	if !IsBatchFile(path) {
		return nil, &types.CalcError{
			Type:    types.InvalidBatch,
			Message: fmt.Sprintf("unsupported batch file extension %q (expected %s)", filepath.Ext(path), strings.Join(Extensions, ", ")),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return Decode(data, strings.ToLower(filepath.Ext(path)))
}

// Decode parses data in the format named by ext (".json", ".yaml" or ".yml").
func Decode(data []byte, ext string) (*types.BatchRequest, error) {
	var req types.BatchRequest
	var err error
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &req)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &req)
	default:
		return nil, &types.CalcError{
			Type:    types.InvalidBatch,
			Message: fmt.Sprintf("unsupported batch format %q", ext),
		}
	}
	if err != nil {
		return nil, &types.CalcError{
			Type:    types.InvalidBatch,
			Message: "malformed batch file",
			Cause:   err,
		}
	}
	return &req, nil
}

// WriteFile stores req at path in the format implied by its extension.
func WriteFile(path string, req *types.BatchRequest) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(req, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(req)
	default:
		return &types.CalcError{
			Type:    types.InvalidBatch,
			Message: fmt.Sprintf("unsupported batch file extension %q", filepath.Ext(path)),
		}
	}
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
