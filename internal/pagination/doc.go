// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pagination implements the keyset cursor codec and page size
// normalisation used by timeline reads.
//
// A cursor is an opaque, URL-safe string encoding the (created_at, id) pair of
// the last item a client has seen. Clients must treat it as a capability for
// "continue from here" and never parse or construct it.
package pagination
