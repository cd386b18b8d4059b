// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrConnectivity marks failures to reach the authority: network and
	// timeout errors and gateway statuses (502, 503, 504).
	ErrConnectivity = errors.New("authority unreachable")
	// ErrUnexpectedStatus marks any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrMalformedResponse marks a 2xx response whose body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrSigningRequest is returned when the request token cannot be issued.
	ErrSigningRequest = errors.New("error signing request")

	ErrInvalidAddress = errors.New("invalid adapter http address")
)
