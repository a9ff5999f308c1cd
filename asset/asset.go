// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"math"
	"unicode/utf8"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

// limits on text fields
const (
	MaximumNameLength = 32
	MaximumURILength  = 200
)

// Asset - the core record of a single asset
type Asset struct {
	Owner           account.Address  `json:"owner"`
	UpdateAuthority authority.Holder `json:"updateAuthority"`
	Name            string           `json:"name"`
	URI             string           `json:"uri"`
	Seq             *uint64          `json:"seq,omitempty"`
}

// Key - the record discriminator
func (a *Asset) Key() Key {
	return AssetV1
}

// Pack - stored form of an asset
func (a *Asset) Pack() ([]byte, error) {
	if err := checkText(a.Name, a.URI); nil != err {
		return nil, err
	}
	buffer := wire.AppendUint8(nil, uint8(AssetV1))
	buffer = wire.AppendAddress(buffer, a.Owner)
	buffer = a.UpdateAuthority.Pack(buffer)
	buffer = wire.AppendString(buffer, a.Name)
	buffer = wire.AppendString(buffer, a.URI)
	buffer = wire.AppendOptionalUint64(buffer, a.Seq)
	return buffer, nil
}

// IncrementSeq - mark a successful mutation
//
// a missing counter starts from zero so the first mutation gives 1
func (a *Asset) IncrementSeq() error {
	seq := uint64(0)
	if nil != a.Seq {
		seq = *a.Seq
	}
	if math.MaxUint64 == seq {
		return fault.ErrNumericalOverflow
	}
	seq += 1
	a.Seq = &seq
	return nil
}

// SeqValue - the counter, zero when absent
func (a *Asset) SeqValue() uint64 {
	if nil == a.Seq {
		return 0
	}
	return *a.Seq
}

// Clone - copy with an independent counter
func (a *Asset) Clone() *Asset {
	c := *a
	if nil != a.Seq {
		seq := *a.Seq
		c.Seq = &seq
	}
	return &c
}

func unpackAsset(u *wire.Unpacker) *Asset {
	a := &Asset{
		Owner:           u.ReadAddress(),
		UpdateAuthority: authority.UnpackHolder(u),
		Name:            u.ReadString(),
		URI:             u.ReadString(),
		Seq:             u.ReadOptionalUint64(),
	}
	return a
}

func checkText(name string, uri string) error {
	if !utf8.ValidString(name) || !utf8.ValidString(uri) {
		return fault.ErrInvalidText
	}
	if len(name) > MaximumNameLength {
		return fault.ErrNameTooLong
	}
	if len(uri) > MaximumURILength {
		return fault.ErrURITooLong
	}
	return nil
}
