// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package types

import (
	"github.com/erigontech/execution-core/common"
	"github.com/erigontech/execution-core/crypto"
)

// CreateBloom implements spec §6's logs_bloom(logs) collaborator: each log
// contributes its address and every topic to the 2048-bit filter via the
// classic three-hash-bits-per-item scheme.
func CreateBloom(logs []*Log) common.Bloom {
	var b common.Bloom
	for _, log := range logs {
		bloom9(&b, log.Address.Bytes())
		for _, topic := range log.Topics {
			bloom9(&b, topic.Bytes())
		}
	}
	return b
}

// MergeBloom ORs together every receipt's bloom filter into the block-level
// bloom (spec §4.7 step 3, "block bloom = bloom of block_logs" -- computed
// here incrementally per-receipt rather than re-scanning all logs at once,
// which is equivalent since bloom OR is associative).
func MergeBloom(blooms []common.Bloom) common.Bloom {
	var b common.Bloom
	for _, o := range blooms {
		b.OrBloom(o)
	}
	return b
}

// bloom9 sets the three bits data's keccak256 hash selects, following
// go-ethereum's bloom9: for each of the first three 16-bit big-endian words
// of the hash, take its low 11 bits as a bit index into the 2048-bit filter.
func bloom9(b *common.Bloom, data []byte) {
	hash := crypto.Keccak256(data)
	for i := 0; i < 6; i += 2 {
		bit := (uint(hash[i+1]) + (uint(hash[i]) << 8)) & 0x7ff
		b[common.BloomLength-1-bit/8] |= 1 << (bit % 8)
	}
}

// BloomLookup reports whether bloom might contain data (false positives are
// possible, false negatives are not).
func BloomLookup(bloom common.Bloom, data []byte) bool {
	var want common.Bloom
	bloom9(&want, data)
	for i := range want {
		if want[i]&bloom[i] != want[i] {
			return false
		}
	}
	return true
}
