// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

var (
	// ErrReadingContent is returned when a content file cannot be opened or read.
	ErrReadingContent = errors.New("error reading content file")

	ErrInvalidTokenParams   = errors.New("invalid params for generating JWT token")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidAuthorization = errors.New("invalid authorization header")
)
