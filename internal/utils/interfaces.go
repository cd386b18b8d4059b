// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

//go:generate mockgen -source=interfaces.go -destination=../mock/utils_mock.go -package=mock

// ContentHasher computes the digest and size of a packet content file.
type ContentHasher interface {
	// HashAndSize returns the upper-case hex SHA-256 of the file at path and
	// its size in bytes. Errors wrap [ErrReadingContent].
	HashAndSize(path string) (string, int64, error)
}
