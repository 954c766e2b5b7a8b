package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads a project from JSON.
func Decode(r io.Reader) (*Project, error) {
	var p Project
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &p, nil
}

// Load reads a project file from disk.
func Load(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open project file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}
