// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/compression"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/journal"
	"github.com/bitmark-inc/assetcore/processor"
)

type entryView struct {
	Sequence uint64          `json:"sequence"`
	Kind     journal.Kind    `json:"kind"`
	Payload  json.RawMessage `json:"payload"`
}

type journalView struct {
	Last    uint64      `json:"last"`
	Entries []entryView `json:"entries"`
}

func runJournal(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fault.ErrInvalidCount
	}

	entries, err := journal.List(c.Uint64("start"), count)
	if nil != err {
		return err
	}

	view := journalView{
		Last:    journal.Last(),
		Entries: make([]entryView, 0, len(entries)),
	}
	for _, e := range entries {
		view.Entries = append(view.Entries, entryView{
			Sequence: e.Sequence,
			Kind:     e.Kind,
			Payload:  e.Payload,
		})
	}
	return printJson(m.w, view)
}

// latestProof - the most recent compression proof journalled for an asset
func latestProof(address account.Address) (*compression.Proof, error) {
	for sequence := journal.Last(); sequence > 0; sequence -= 1 {
		e, err := journal.Read(sequence)
		if nil != err {
			return nil, err
		}
		if journal.CompressionProof != e.Kind {
			continue
		}
		notice := processor.CompressionNotice{}
		if err := json.Unmarshal(e.Payload, &notice); nil != err {
			return nil, err
		}
		if notice.Asset == address {
			return notice.Proof, nil
		}
	}
	return nil, fault.ErrMissingCompressionProof
}
