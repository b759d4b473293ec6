/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainhash

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.
func HashMerkleBranches(left *Hash, right *Hash) *Hash {
	// Concatenate the left and right nodes.
	var hash [HashSize * 2]byte
	copy(hash[:HashSize], left[:])
	copy(hash[HashSize:], right[:])

	newHash := DoubleHashH(hash[:])
	return &newHash
}

// MerkleTreeRoot computes the root of the bitcoin-style merkle tree over the
// passed leaves.  A level with an odd number of nodes pairs its last node with
// itself.  The root of a single leaf is the leaf.  An empty list yields the
// zero hash.
func MerkleTreeRoot(hashes []Hash) Hash {
	if len(hashes) == 0 {
		return Hash{}
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)

	for len(level) > 1 {
		next := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, *HashMerkleBranches(&left, &right))
		}
		level = next
	}

	return level[0]
}

// BuildMerkleTreeProof returns the path of sibling hashes that proves the
// inclusion of the first leaf (the coinbase) in the tree root.
func BuildMerkleTreeProof(hashes []Hash) []Hash {
	proof := make([]Hash, 0)
	if len(hashes) < 2 {
		return proof
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)

	for len(level) > 1 {
		proof = append(proof, level[1])

		next := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, *HashMerkleBranches(&left, &right))
		}
		level = next
	}

	return proof
}

// ValidateMerkleTreeProof checks that folding the proof path into the first
// leaf yields the expected root.
func ValidateMerkleTreeProof(leaf Hash, proof []Hash, root Hash) bool {
	acc := leaf
	for i := range proof {
		acc = *HashMerkleBranches(&acc, &proof[i])
	}

	return acc == root
}
