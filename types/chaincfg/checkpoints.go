/*
 * Copyright (c) 2026 The Quimera Labs developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"io"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"gitlab.com/quimeralabs/dogeposd/types/chainhash"
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.  Checkpoints are a fast-trust
// hint, never the only validation path.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// ChainTxData summarises transaction history up to the last checkpoint.  It
// is only used to estimate sync progress.
type ChainTxData struct {
	// Time is the unix timestamp of the last checkpoint block.
	Time int64
	// TxCount is the total number of transactions between genesis and the
	// last checkpoint.
	TxCount int64
	// TxRate is the estimated number of transactions per day after the
	// last checkpoint.
	TxRate float64
}

// Checkpoints is an ordered table of height to block hash.  Heights are
// unique and iteration is always in ascending height order.  A table is
// read-only once it is attached to a profile.
type Checkpoints struct {
	tree *treemap.Map
}

// NewCheckpoints builds a table from the passed checkpoints.  Duplicate
// heights and nil hashes are rejected.
func NewCheckpoints(checkpoints ...Checkpoint) (*Checkpoints, error) {
	table := &Checkpoints{tree: treemap.NewWith(utils.Int32Comparator)}
	for _, cp := range checkpoints {
		if cp.Hash == nil {
			return nil, errors.Errorf("checkpoint at height %d has no hash", cp.Height)
		}
		if cp.Height < 0 {
			return nil, errors.Errorf("checkpoint height %d is negative", cp.Height)
		}
		if _, found := table.tree.Get(cp.Height); found {
			return nil, errors.Errorf("duplicate checkpoint at height %d", cp.Height)
		}

		hash := *cp.Hash
		table.tree.Put(cp.Height, hash)
	}

	return table, nil
}

// Len returns the number of checkpoints.
func (c *Checkpoints) Len() int {
	if c == nil {
		return 0
	}
	return c.tree.Size()
}

// Lookup returns the checkpoint hash at exactly height.
func (c *Checkpoints) Lookup(height int32) (*chainhash.Hash, bool) {
	if c == nil {
		return nil, false
	}

	value, found := c.tree.Get(height)
	if !found {
		return nil, false
	}

	hash := value.(chainhash.Hash)
	return &hash, true
}

// LatestAtOrBelow returns the checkpoint with the greatest height that does
// not exceed height.
func (c *Checkpoints) LatestAtOrBelow(height int32) (Checkpoint, bool) {
	if c == nil {
		return Checkpoint{}, false
	}

	key, value := c.tree.Floor(height)
	if key == nil {
		return Checkpoint{}, false
	}

	hash := value.(chainhash.Hash)
	return Checkpoint{Height: key.(int32), Hash: &hash}, true
}

// Last returns the highest checkpoint.
func (c *Checkpoints) Last() (Checkpoint, bool) {
	if c.Len() == 0 {
		return Checkpoint{}, false
	}

	key, value := c.tree.Max()
	hash := value.(chainhash.Hash)
	return Checkpoint{Height: key.(int32), Hash: &hash}, true
}

// Heights returns the checkpoint heights in ascending order.
func (c *Checkpoints) Heights() []int32 {
	heights := make([]int32, 0, c.Len())
	if c == nil {
		return heights
	}

	for _, key := range c.tree.Keys() {
		heights = append(heights, key.(int32))
	}
	return heights
}

// All returns a copy of the checkpoints in ascending height order.
func (c *Checkpoints) All() []Checkpoint {
	all := make([]Checkpoint, 0, c.Len())
	if c == nil {
		return all
	}

	it := c.tree.Iterator()
	for it.Next() {
		hash := it.Value().(chainhash.Hash)
		all = append(all, Checkpoint{Height: it.Key().(int32), Hash: &hash})
	}
	return all
}

// CheckpointRow is the CSV form of a checkpoint.
type CheckpointRow struct {
	Height int32  `csv:"height"`
	Hash   string `csv:"hash"`
}

// Rows returns the table as CSV rows in ascending height order.
func (c *Checkpoints) Rows() []CheckpointRow {
	all := c.All()
	rows := make([]CheckpointRow, 0, len(all))
	for _, cp := range all {
		rows = append(rows, CheckpointRow{Height: cp.Height, Hash: cp.Hash.String()})
	}
	return rows
}

// WriteCSV writes the table to w with a height,hash header.
func (c *Checkpoints) WriteCSV(w io.Writer) error {
	return gocsv.Marshal(c.Rows(), w)
}

// ReadCheckpointsCSV parses a height,hash CSV document into a table.
func ReadCheckpointsCSV(r io.Reader) (*Checkpoints, error) {
	rows := make([]CheckpointRow, 0)
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Wrap(err, "unable to decode checkpoints csv")
	}

	checkpoints := make([]Checkpoint, 0, len(rows))
	for _, row := range rows {
		hash, err := chainhash.NewHashFromStr(row.Hash)
		if err != nil {
			return nil, errors.Wrapf(err, "bad checkpoint hash at height %d", row.Height)
		}
		checkpoints = append(checkpoints, Checkpoint{Height: row.Height, Hash: hash})
	}

	return NewCheckpoints(checkpoints...)
}
