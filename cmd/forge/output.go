package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

// writeOutput runs write against path, or stdout when path is empty.
func writeOutput(path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(os.Stdout)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	return write(f)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func checkFormat(format string, valid []string) error {
	if !slices.Contains(valid, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, valid)
	}
	return nil
}
