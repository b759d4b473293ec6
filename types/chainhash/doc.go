// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the hash type shared by the chain parameter
// packages together with the double sha256 and merkle tree primitives.
//
// Hashes are stored in internal byte order and printed byte-reversed, the
// same way block explorers display them.
package chainhash
