// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"strings"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

// HolderKind - who holds the update authority of an asset
type HolderKind uint8

// holder kinds, values are the stored tags
const (
	HolderNone       HolderKind = 0
	HolderAddress    HolderKind = 1
	HolderCollection HolderKind = 2
)

// Holder - the update authority field of an asset
//
// for HolderCollection the address is the collection cell and the
// real update authority is that collection's own one
type Holder struct {
	Kind    HolderKind
	Address account.Address
}

// NoHolder - an asset whose metadata can no longer change
var NoHolder = Holder{Kind: HolderNone}

// HeldBy - update authority held directly by an address
func HeldBy(address account.Address) Holder {
	return Holder{Kind: HolderAddress, Address: address}
}

// InCollection - update authority delegated to a collection
func InCollection(collection account.Address) Holder {
	return Holder{Kind: HolderCollection, Address: collection}
}

// Key - the address stored in the holder, false for HolderNone
func (h Holder) Key() (account.Address, bool) {
	if HolderNone == h.Kind {
		return account.Zero, false
	}
	return h.Address, true
}

// Collection - the collection address when delegated to one
func (h Holder) Collection() (account.Address, bool) {
	if HolderCollection != h.Kind {
		return account.Zero, false
	}
	return h.Address, true
}

// String - text form
func (h Holder) String() string {
	switch h.Kind {
	case HolderNone:
		return "None"
	case HolderAddress:
		return "Address:" + h.Address.String()
	case HolderCollection:
		return "Collection:" + h.Address.String()
	default:
		return "*unknown*"
	}
}

// MarshalText - convert to text for JSON
func (h Holder) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - accept "None", "Address:<base58>" or "Collection:<base58>"
func (h *Holder) UnmarshalText(s []byte) error {
	text := string(s)
	if "none" == strings.ToLower(text) {
		*h = NoHolder
		return nil
	}
	n := strings.IndexByte(text, ':')
	if n < 0 {
		return fault.ErrInvalidAddress
	}
	address, err := account.AddressFromBase58(text[n+1:])
	if nil != err {
		return err
	}
	switch strings.ToLower(text[:n]) {
	case "address":
		*h = HeldBy(address)
	case "collection":
		*h = InCollection(address)
	default:
		return fault.ErrInvalidAddress
	}
	return nil
}

// Pack - append the stored form
func (h Holder) Pack(buffer []byte) []byte {
	buffer = wire.AppendUint8(buffer, uint8(h.Kind))
	if HolderNone != h.Kind {
		buffer = wire.AppendAddress(buffer, h.Address)
	}
	return buffer
}

// UnpackHolder - read the stored form
func UnpackHolder(u *wire.Unpacker) Holder {
	kind := HolderKind(u.ReadUint8())
	switch kind {
	case HolderNone:
		return NoHolder
	case HolderAddress, HolderCollection:
		return Holder{Kind: kind, Address: u.ReadAddress()}
	default:
		u.Fail(fault.ErrDeserialization)
		return NoHolder
	}
}
