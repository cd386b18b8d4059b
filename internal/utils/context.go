// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, content hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// MachineIDCtxKey is the key under which the authority stores the machine id
// of a verified request token.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.MachineIDCtxKey, "10002")
var MachineIDCtxKey = contextKey("machineID")

// TraceIDCtxKey is the key under which the trace id of the current request
// is stored.
var TraceIDCtxKey = contextKey("traceID")

// GetMachineIDFromContext retrieves the machine identifier from the context.
//
// Returns the machine id and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetMachineIDFromContext(ctx context.Context) (string, bool) {
	machineID, ok := ctx.Value(MachineIDCtxKey).(string)
	return machineID, ok && machineID != ""
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored by [WithTraceID], or an
// empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
