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

// Kind - enumerated role type
type Kind uint8

// roles, values are the stored tags
const (
	None            Kind = 0
	Owner           Kind = 1
	UpdateAuthority Kind = 2
	Address         Kind = 3
)

// String - name of a role
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Owner:
		return "Owner"
	case UpdateAuthority:
		return "UpdateAuthority"
	case Address:
		return "Address"
	default:
		return "*unknown*"
	}
}

// Authority - a role, Address is only meaningful for the Address kind
type Authority struct {
	Kind    Kind
	Address account.Address
}

// the fixed roles
var (
	NoAuthority         = Authority{Kind: None}
	OwnerAuthority      = Authority{Kind: Owner}
	UpdateAuthorityRole = Authority{Kind: UpdateAuthority}
)

// ForAddress - the role held only by one address
func ForAddress(address account.Address) Authority {
	return Authority{
		Kind:    Address,
		Address: address,
	}
}

// Equal - same role, addresses compared only for the Address kind
func (a Authority) Equal(other Authority) bool {
	if a.Kind != other.Kind {
		return false
	}
	if Address == a.Kind {
		return a.Address == other.Address
	}
	return true
}

// String - text form: a role name or the base58 address
func (a Authority) String() string {
	if Address == a.Kind {
		return a.Address.String()
	}
	return a.Kind.String()
}

// MarshalText - convert to text for JSON
func (a Authority) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - accept a role name (any case) or a base58 address
func (a *Authority) UnmarshalText(s []byte) error {
	switch strings.ToLower(string(s)) {
	case "none":
		*a = NoAuthority
	case "owner":
		*a = OwnerAuthority
	case "updateauthority", "update_authority", "update-authority":
		*a = UpdateAuthorityRole
	default:
		address, err := account.AddressFromBase58(string(s))
		if nil != err {
			return err
		}
		*a = ForAddress(address)
	}
	return nil
}

// Pack - append the stored form
func (a Authority) Pack(buffer []byte) []byte {
	buffer = wire.AppendUint8(buffer, uint8(a.Kind))
	if Address == a.Kind {
		buffer = wire.AppendAddress(buffer, a.Address)
	}
	return buffer
}

// Unpack - read the stored form
func Unpack(u *wire.Unpacker) Authority {
	kind := Kind(u.ReadUint8())
	switch kind {
	case None, Owner, UpdateAuthority:
		return Authority{Kind: kind}
	case Address:
		return ForAddress(u.ReadAddress())
	default:
		u.Fail(fault.ErrDeserialization)
		return NoAuthority
	}
}

// UnpackOptional - read Option<Authority>
func UnpackOptional(u *wire.Unpacker) *Authority {
	if !u.ReadOption() {
		return nil
	}
	a := Unpack(u)
	return &a
}

// PackOptional - append Option<Authority>
func PackOptional(buffer []byte, a *Authority) []byte {
	if nil == a {
		return wire.AppendOption(buffer, false)
	}
	buffer = wire.AppendOption(buffer, true)
	return a.Pack(buffer)
}
