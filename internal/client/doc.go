// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync agent runtime.
//
// It wires the sync services and background workers into a single process
// lifecycle: a startup sync, then scheduled syncs until the process is asked
// to stop.
package client
