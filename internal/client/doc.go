// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses a subcommand, calls the server through the REST adapter, keeps
// the bearer token between runs in a token file and prints results to the
// configured output.
package client
