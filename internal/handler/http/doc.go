// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the reference
// authority.
//
// It exposes the packet sync route together with the middleware that runs in
// front of it: request tracing, access logging, and bearer-token
// authentication. Decoded requests are delegated to the service layer.
package http
