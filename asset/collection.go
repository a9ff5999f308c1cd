// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"math"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

// Collection - the core record of a collection
type Collection struct {
	UpdateAuthority account.Address `json:"updateAuthority"`
	Name            string          `json:"name"`
	URI             string          `json:"uri"`
	NumMinted       uint32          `json:"numMinted"`
	CurrentSize     uint32          `json:"currentSize"`
}

// Key - the record discriminator
func (c *Collection) Key() Key {
	return CollectionV1
}

// Pack - stored form of a collection
func (c *Collection) Pack() ([]byte, error) {
	if err := checkText(c.Name, c.URI); nil != err {
		return nil, err
	}
	buffer := wire.AppendUint8(nil, uint8(CollectionV1))
	buffer = wire.AppendAddress(buffer, c.UpdateAuthority)
	buffer = wire.AppendString(buffer, c.Name)
	buffer = wire.AppendString(buffer, c.URI)
	buffer = wire.AppendUint32(buffer, c.NumMinted)
	buffer = wire.AppendUint32(buffer, c.CurrentSize)
	return buffer, nil
}

// Mint - count a new member
func (c *Collection) Mint() error {
	if math.MaxUint32 == c.NumMinted || math.MaxUint32 == c.CurrentSize {
		return fault.ErrNumericalOverflow
	}
	c.NumMinted += 1
	c.CurrentSize += 1
	return nil
}

// Leave - count a burned member
func (c *Collection) Leave() error {
	if 0 == c.CurrentSize {
		return fault.ErrNumericalOverflow
	}
	c.CurrentSize -= 1
	return nil
}

func unpackCollection(u *wire.Unpacker) *Collection {
	return &Collection{
		UpdateAuthority: u.ReadAddress(),
		Name:            u.ReadString(),
		URI:             u.ReadString(),
		NumMinted:       u.ReadUint32(),
		CurrentSize:     u.ReadUint32(),
	}
}
