// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/fault"
)

// Roles - the set of roles a caller holds for one record
type Roles []Authority

// Contains - true if the role is in the set
func (roles Roles) Contains(a Authority) bool {
	for _, r := range roles {
		if r.Equal(a) {
			return true
		}
	}
	return false
}

// Resolve - roles a caller holds for an asset
//
// collection is the update authority of the asset's collection and is
// required when the asset's holder is a collection
func Resolve(caller account.Address, owner account.Address, holder Holder, collection *account.Address) (Roles, error) {
	roles := Roles{ForAddress(caller)}

	if caller == owner {
		roles = append(roles, OwnerAuthority)
	}

	switch holder.Kind {
	case HolderAddress:
		if caller == holder.Address {
			roles = append(roles, UpdateAuthorityRole)
		}
	case HolderCollection:
		if nil == collection {
			return nil, fault.ErrMissingCollection
		}
		if caller == *collection {
			roles = append(roles, UpdateAuthorityRole)
		}
	}
	return roles, nil
}

// ResolveCollection - roles a caller holds for a collection
func ResolveCollection(caller account.Address, updateAuthority account.Address) Roles {
	roles := Roles{ForAddress(caller)}
	if caller == updateAuthority {
		roles = append(roles, UpdateAuthorityRole)
	}
	return roles
}
