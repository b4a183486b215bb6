// Copyright 2014 The go-ethereum Authors
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
	"github.com/erigontech/execution-core/rlp"
)

// Receipt records the outcome of applying one transaction (spec §2 data
// model): whether it succeeded, the block's cumulative gas usage through
// this transaction, its log bloom, and the logs it emitted.
type Receipt struct {
	Type             byte
	Succeeded        bool
	CumulativeGasUsed uint64
	Bloom            common.Bloom
	Logs             []*Log
}

// EncodeRLP returns the receipt's canonical wire encoding: the bare RLP list
// for a legacy (type 0) receipt, the type byte followed by the RLP list
// otherwise (spec §6's "encode_receipt").
func (r *Receipt) EncodeRLP() []byte {
	e := rlp.NewEncoder()
	e.WriteBool(r.Succeeded)
	e.WriteUint64(r.CumulativeGasUsed)
	e.WriteBytes(r.Bloom.Bytes())
	e.WriteList(func(e *rlp.Encoder) {
		for _, log := range r.Logs {
			e.WriteList(func(e *rlp.Encoder) {
				e.WriteBytes(log.Address.Bytes())
				e.WriteList(func(e *rlp.Encoder) {
					for _, topic := range log.Topics {
						e.WriteBytes(topic.Bytes())
					}
				})
				e.WriteBytes(log.Data)
			})
		}
	})
	payload := rlp.EncodeList(e.Bytes())
	if r.Type == LegacyTxType {
		return payload
	}
	return append([]byte{r.Type}, payload...)
}

// DecodeReceipt decodes a wire-encoded receipt, dispatching on the leading
// type byte the same way DecodeTransaction does.
func DecodeReceipt(data []byte) (*Receipt, error) {
	r := &Receipt{}
	var s *rlp.Stream
	if len(data) > 0 && data[0] < 0xc0 {
		r.Type = data[0]
		s = rlp.NewStream(data[1:])
	} else {
		r.Type = LegacyTxType
		s = rlp.NewStream(data)
	}
	listStream, err := s.List()
	if err != nil {
		return nil, err
	}
	if r.Succeeded, err = listStream.Bool(); err != nil {
		return nil, err
	}
	if r.CumulativeGasUsed, err = listStream.Uint64(); err != nil {
		return nil, err
	}
	bloomBytes, err := listStream.Bytes()
	if err != nil {
		return nil, err
	}
	r.Bloom.SetBytes(bloomBytes)
	logsStream, err := listStream.List()
	if err != nil {
		return nil, err
	}
	for !logsStream.AtEnd() {
		logStream, err := logsStream.List()
		if err != nil {
			return nil, err
		}
		addrBytes, err := logStream.Bytes()
		if err != nil {
			return nil, err
		}
		topicsStream, err := logStream.List()
		if err != nil {
			return nil, err
		}
		var topics []common.Hash
		for !topicsStream.AtEnd() {
			tb, err := topicsStream.Bytes()
			if err != nil {
				return nil, err
			}
			topics = append(topics, common.BytesToHash(tb))
		}
		data, err := logStream.Bytes()
		if err != nil {
			return nil, err
		}
		r.Logs = append(r.Logs, &Log{Address: common.BytesToAddress(addrBytes), Topics: topics, Data: data})
	}
	return r, nil
}
