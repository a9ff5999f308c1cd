// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"github.com/bitmark-inc/assetcore/fault"
)

// CheckResult - static classification of a plugin for an operation
type CheckResult uint8

// classifications
const (
	CheckNone CheckResult = iota
	CanApprove
	CanReject
	CanForceApprove
)

// String - name of a classification
func (c CheckResult) String() string {
	switch c {
	case CheckNone:
		return "None"
	case CanApprove:
		return "CanApprove"
	case CanReject:
		return "CanReject"
	case CanForceApprove:
		return "CanForceApprove"
	default:
		return "*unknown*"
	}
}

// ValidationResult - outcome of one check
type ValidationResult uint8

// outcomes
const (
	Approved ValidationResult = iota
	Rejected
	Pass
	ForceApproved
)

// String - name of an outcome
func (v ValidationResult) String() string {
	switch v {
	case Approved:
		return "Approved"
	case Rejected:
		return "Rejected"
	case Pass:
		return "Pass"
	case ForceApproved:
		return "ForceApproved"
	default:
		return "*unknown*"
	}
}

// MarshalText - outcome name for JSON
func (v ValidationResult) MarshalText() ([]byte, error) {
	if v > ForceApproved {
		return nil, fault.ErrInvalidPluginSetting
	}
	return []byte(v.String()), nil
}

// UnmarshalText - outcome from its name
func (v *ValidationResult) UnmarshalText(s []byte) error {
	for r := Approved; r <= ForceApproved; r += 1 {
		if r.String() == string(s) {
			*v = r
			return nil
		}
	}
	return fault.ErrInvalidPluginSetting
}
