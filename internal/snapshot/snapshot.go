// Package snapshot persists the vocabulary between runs as a compressed
// binary blob. The format is implementation-internal; the only guarantee is
// an exact round-trip of every entry field.
package snapshot

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/adbar/shoten/schema"
)

// Save writes the vocabulary to path as a gzip-compressed gob stream.
// I/O failures propagate: there is no safe default for "could not persist".
func Save(vocab schema.Vocabulary, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create snapshot %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	zw := gzip.NewWriter(file)
	if err := gob.NewEncoder(zw).Encode(vocab); err != nil {
		_ = zw.Close()
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("cannot finish snapshot %s: %w", path, err)
	}
	return file.Close()
}

// Load reads a snapshot written by Save and restores the full vocabulary.
func Load(path string) (schema.Vocabulary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot %s: %w", path, err)
	}
	defer func() { _ = zr.Close() }()

	var vocab schema.Vocabulary
	if err := gob.NewDecoder(zr).Decode(&vocab); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot %s: %w", path, err)
	}
	return vocab, nil
}
