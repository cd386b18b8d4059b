// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencontainers/go-digest"
)

// FileHasher implements [ContentHasher] over the local filesystem.
type FileHasher struct {
	algorithm digest.Algorithm
}

// NewFileHasher returns a SHA-256 [FileHasher].
//
// Example usage:
//
//	hash, size, err := utils.NewFileHasher().HashAndSize("/packets/10001100020000120260101120000.zip")
func NewFileHasher() *FileHasher {
	return &FileHasher{algorithm: digest.SHA256}
}

// HashAndSize streams the file through the digester, so large packets are
// never loaded into memory.
func (h *FileHasher) HashAndSize(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrReadingContent, err)
	}
	defer f.Close()

	digester := h.algorithm.Digester()
	size, err := io.Copy(digester.Hash(), f)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrReadingContent, err)
	}

	return strings.ToUpper(digester.Digest().Encoded()), size, nil
}
