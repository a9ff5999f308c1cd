// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

// limits on royalty settings
const (
	MaximumBasisPoints = 10000
	totalPercentage    = 100
)

// RuleSetKind - how the rule set addresses are applied
type RuleSetKind uint8

// rule set kinds, values are the stored tags
const (
	RuleSetNone      RuleSetKind = 0
	ProgramAllowList RuleSetKind = 1
	ProgramDenyList  RuleSetKind = 2
)

var ruleSetNames = map[RuleSetKind]string{
	RuleSetNone:      "None",
	ProgramAllowList: "ProgramAllowList",
	ProgramDenyList:  "ProgramDenyList",
}

// MarshalText - kind name for JSON
func (k RuleSetKind) MarshalText() ([]byte, error) {
	name, ok := ruleSetNames[k]
	if !ok {
		return nil, fault.ErrInvalidPluginSetting
	}
	return []byte(name), nil
}

// UnmarshalText - kind from its name
func (k *RuleSetKind) UnmarshalText(s []byte) error {
	for kind, name := range ruleSetNames {
		if name == string(s) {
			*k = kind
			return nil
		}
	}
	return fault.ErrInvalidPluginSetting
}

// RuleSet - restriction on who may receive a royalty bearing asset
type RuleSet struct {
	Kind      RuleSetKind       `json:"kind"`
	Addresses []account.Address `json:"addresses,omitempty"`
}

// Creator - one royalty recipient
type Creator struct {
	Address    account.Address `json:"address"`
	Percentage uint8           `json:"percentage"`
}

// RoyaltySplit - Royalties payload
type RoyaltySplit struct {
	hooks
	BasisPoints uint16    `json:"basisPoints"`
	Creators    []Creator `json:"creators"`
	RuleSet     RuleSet   `json:"ruleSet"`
}

// Type - the plugin tag
func (r *RoyaltySplit) Type() Type {
	return Royalties
}

func (r *RoyaltySplit) packData(buffer []byte) []byte {
	buffer = wire.AppendUint16(buffer, r.BasisPoints)
	buffer = wire.AppendLength(buffer, len(r.Creators))
	for _, c := range r.Creators {
		buffer = wire.AppendAddress(buffer, c.Address)
		buffer = wire.AppendUint8(buffer, c.Percentage)
	}
	buffer = wire.AppendUint8(buffer, uint8(r.RuleSet.Kind))
	if RuleSetNone != r.RuleSet.Kind {
		buffer = wire.AppendAddresses(buffer, r.RuleSet.Addresses)
	}
	return buffer
}

func unpackRoyalties(u *wire.Unpacker) Plugin {
	r := &RoyaltySplit{
		BasisPoints: u.ReadUint16(),
	}
	count := u.ReadLength(account.AddressLength + 1)
	r.Creators = make([]Creator, 0, count)
	for i := 0; i < count; i += 1 {
		r.Creators = append(r.Creators, Creator{
			Address:    u.ReadAddress(),
			Percentage: u.ReadUint8(),
		})
	}
	r.RuleSet.Kind = RuleSetKind(u.ReadUint8())
	switch r.RuleSet.Kind {
	case RuleSetNone:
	case ProgramAllowList, ProgramDenyList:
		r.RuleSet.Addresses = u.ReadAddresses()
	default:
		u.Fail(fault.ErrDeserialization)
	}
	return r
}

// Check - basis points in range, creator shares summing to 100%
func (r *RoyaltySplit) Check() error {
	if r.BasisPoints > MaximumBasisPoints {
		return fault.ErrInvalidPluginSetting
	}
	total := 0
	seen := make(map[account.Address]struct{}, len(r.Creators))
	for _, c := range r.Creators {
		if _, ok := seen[c.Address]; ok {
			return fault.ErrInvalidPluginSetting
		}
		seen[c.Address] = struct{}{}
		total += int(c.Percentage)
	}
	if totalPercentage != total {
		return fault.ErrInvalidPluginSetting
	}
	return nil
}

// ValidateCreate - settings must be valid
func (r *RoyaltySplit) ValidateCreate(ctx *Context) (ValidationResult, error) {
	if err := r.Check(); nil != err {
		return Rejected, err
	}
	return Pass, nil
}

// ValidateAddPlugin - settings of a new royalties plugin must be valid
func (r *RoyaltySplit) ValidateAddPlugin(ctx *Context) (ValidationResult, error) {
	return checkTarget(ctx)
}

// ValidateUpdatePlugin - new settings must be valid
func (r *RoyaltySplit) ValidateUpdatePlugin(ctx *Context) (ValidationResult, error) {
	return checkTarget(ctx)
}

// ValidateTransfer - apply the rule set to the new owner
func (r *RoyaltySplit) ValidateTransfer(ctx *Context) (ValidationResult, error) {
	if nil == ctx.NewOwner {
		return Pass, fault.ErrMissingNewOwner
	}
	listed := false
	for _, a := range r.RuleSet.Addresses {
		if a == *ctx.NewOwner {
			listed = true
			break
		}
	}
	switch r.RuleSet.Kind {
	case ProgramAllowList:
		if !listed {
			return Rejected, nil
		}
	case ProgramDenyList:
		if listed {
			return Rejected, nil
		}
	}
	return Pass, nil
}

func checkTarget(ctx *Context) (ValidationResult, error) {
	target, ok := ctx.Target.(*RoyaltySplit)
	if !ok {
		return Pass, nil
	}
	if err := target.Check(); nil != err {
		return Rejected, err
	}
	return Pass, nil
}
