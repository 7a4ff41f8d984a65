package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/cascade/pkg/definition"
)

// ReadSource returns the contents of path, or of stdin when path is "-" or empty.
func ReadSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// DecodeJSON parses a payload keeping numbers as json.Number.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON payload: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON payload: trailing data")
	}
	return v, nil
}

// WriteJSON encodes v to w, indented when pretty is set.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// LoadDefinition reads and parses a workflow definition document.
func LoadDefinition(path string, stdin io.Reader) (*definition.WorkflowDefinition, error) {
	data, err := ReadSource(path, stdin)
	if err != nil {
		return nil, err
	}
	return definition.ParseWorkflowDefinition(string(data))
}
