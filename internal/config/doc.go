// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the sync agent and the reference authority.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields no source sets are taken from the package defaults. The main entry
// points are [GetClientConfig] for the sync agent and [GetAuthorityConfig]
// for the reference authority.
package config
