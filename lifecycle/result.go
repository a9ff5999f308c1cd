// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle

import (
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/plugin"
)

// tally - running reduction of validation results
type tally struct {
	approved bool
	rejected bool
	forced   bool
}

// add - fold in one result, true once the decision is final
func (t *tally) add(r plugin.ValidationResult) bool {
	switch r {
	case plugin.ForceApproved:
		if !t.rejected {
			t.forced = true
			return true
		}
	case plugin.Rejected:
		t.rejected = true
	case plugin.Approved:
		t.approved = true
	}
	return false
}

func (t *tally) err() error {
	switch {
	case t.forced:
		return nil
	case t.rejected:
		return fault.ErrInvalidAuthority
	case !t.approved:
		return fault.ErrNoApprovals
	default:
		return nil
	}
}

// Reduce - the decision for a list of results taken in order
func Reduce(results ...plugin.ValidationResult) error {
	t := tally{}
	for _, r := range results {
		if t.add(r) {
			break
		}
	}
	return t.err()
}

// CombineUpdatePlugin - fold the role check of the plugin being updated
// into the result of its own hook
func CombineUpdatePlugin(base plugin.ValidationResult, custom plugin.ValidationResult) plugin.ValidationResult {
	switch {
	case plugin.ForceApproved == base || plugin.ForceApproved == custom:
		return plugin.ForceApproved
	case plugin.Rejected == base || plugin.Rejected == custom:
		return plugin.Rejected
	case plugin.Approved == base || plugin.Approved == custom:
		return plugin.Approved
	default:
		return plugin.Pass
	}
}
