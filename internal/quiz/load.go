package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadErrorKind classifies why a quiz could not be loaded.
type LoadErrorKind string

const (
	LoadIO        LoadErrorKind = "io"
	LoadParse     LoadErrorKind = "parse"
	LoadIntegrity LoadErrorKind = "integrity"
)

// LoadError reports a failed load. The quiz is never partially loaded.
type LoadError struct {
	Path string
	Kind LoadErrorKind
	Err  error
}

// Error returns a readable message for load failures.
func (err *LoadError) Error() string {
	if err == nil {
		return ""
	}
	if err.Path == "" {
		return fmt.Sprintf("Cannot load file: %v", err.Err)
	}
	return fmt.Sprintf("Cannot load file %q: %v", err.Path, err.Err)
}

// Unwrap exposes the underlying cause.
func (err *LoadError) Unwrap() error {
	return err.Err
}

// Load reads, parses, and integrity-checks a quiz file.
func Load(path string) (Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Quiz{}, &LoadError{Path: path, Kind: LoadIO, Err: err}
	}
	q, err := Parse(data)
	if err != nil {
		if loadErr, ok := err.(*LoadError); ok {
			loadErr.Path = path
		}
		return Quiz{}, err
	}
	return q, nil
}

// Parse decodes and integrity-checks a quiz document.
func Parse(data []byte) (Quiz, error) {
	if err := checkShape(data); err != nil {
		return Quiz{}, &LoadError{Kind: LoadParse, Err: err}
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return Quiz{}, &LoadError{Kind: LoadParse, Err: err}
	}
	if err := Validate(doc); err != nil {
		return Quiz{}, &LoadError{Kind: LoadIntegrity, Err: err}
	}
	return doc.Quiz(), nil
}

func decodeDocument(data []byte) (Document, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Document{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Document{}, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}
