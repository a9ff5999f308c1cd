// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/wire"
)

// Freeze - FreezeDelegate payload, blocks transfer and burn
type Freeze struct {
	hooks
	Frozen bool `json:"frozen"`
}

// Type - the plugin tag
func (f *Freeze) Type() Type {
	return FreezeDelegate
}

func (f *Freeze) packData(buffer []byte) []byte {
	return wire.AppendBool(buffer, f.Frozen)
}

// ValidateTransfer - rejected while frozen
func (f *Freeze) ValidateTransfer(ctx *Context) (ValidationResult, error) {
	return rejectIf(f.Frozen), nil
}

// ValidateBurn - rejected while frozen
func (f *Freeze) ValidateBurn(ctx *Context) (ValidationResult, error) {
	return rejectIf(f.Frozen), nil
}

// ValidateRemovePlugin - a frozen freeze cannot be removed
func (f *Freeze) ValidateRemovePlugin(ctx *Context) (ValidationResult, error) {
	return rejectIf(f.Frozen && ctx.targets(FreezeDelegate)), nil
}

// ValidateRevokePluginAuthority - a frozen freeze cannot be revoked
func (f *Freeze) ValidateRevokePluginAuthority(ctx *Context) (ValidationResult, error) {
	return rejectIf(f.Frozen && ctx.targets(FreezeDelegate)), nil
}

// BurnDelegation - BurnDelegate payload
type BurnDelegation struct {
	hooks
}

// Type - the plugin tag
func (b *BurnDelegation) Type() Type {
	return BurnDelegate
}

func (b *BurnDelegation) packData(buffer []byte) []byte {
	return buffer
}

// ValidateBurn - the delegate may burn
func (b *BurnDelegation) ValidateBurn(ctx *Context) (ValidationResult, error) {
	return approveIf(ctx.heldByCaller()), nil
}

// TransferDelegation - TransferDelegate payload
type TransferDelegation struct {
	hooks
}

// Type - the plugin tag
func (d *TransferDelegation) Type() Type {
	return TransferDelegate
}

func (d *TransferDelegation) packData(buffer []byte) []byte {
	return buffer
}

// ValidateTransfer - the delegate may transfer
func (d *TransferDelegation) ValidateTransfer(ctx *Context) (ValidationResult, error) {
	return approveIf(ctx.heldByCaller()), nil
}

// UpdateDelegation - UpdateDelegate payload
//
// the record authority and every additional delegate act as update
// authority, but only the record authority may change this plugin
type UpdateDelegation struct {
	hooks
	AdditionalDelegates []account.Address `json:"additionalDelegates"`
}

// Type - the plugin tag
func (d *UpdateDelegation) Type() Type {
	return UpdateDelegate
}

func (d *UpdateDelegation) packData(buffer []byte) []byte {
	return wire.AppendAddresses(buffer, d.AdditionalDelegates)
}

func (d *UpdateDelegation) delegated(ctx *Context) bool {
	if ctx.heldByCaller() {
		return true
	}
	for _, a := range d.AdditionalDelegates {
		if a == ctx.Caller {
			return true
		}
	}
	return false
}

// an authority managed target, and this plugin itself only for the
// record authority
func (d *UpdateDelegation) mayTouch(ctx *Context) bool {
	if nil == ctx.Target || ctx.Target.Type().IsOwnerManaged() {
		return false
	}
	if ctx.targets(UpdateDelegate) {
		return ctx.heldByCaller()
	}
	return d.delegated(ctx)
}

// ValidateCreate - the delegate of a collection may add assets to it
func (d *UpdateDelegation) ValidateCreate(ctx *Context) (ValidationResult, error) {
	return approveIf(d.delegated(ctx)), nil
}

// ValidateUpdate - the delegate may change metadata
func (d *UpdateDelegation) ValidateUpdate(ctx *Context) (ValidationResult, error) {
	return approveIf(d.delegated(ctx)), nil
}

// ValidateAddPlugin - the delegate may add authority managed plugins
func (d *UpdateDelegation) ValidateAddPlugin(ctx *Context) (ValidationResult, error) {
	return approveIf(d.mayTouch(ctx)), nil
}

// ValidateRemovePlugin - the delegate may remove authority managed plugins
func (d *UpdateDelegation) ValidateRemovePlugin(ctx *Context) (ValidationResult, error) {
	return approveIf(d.mayTouch(ctx)), nil
}

// ValidateUpdatePlugin - the delegate may update authority managed plugins
func (d *UpdateDelegation) ValidateUpdatePlugin(ctx *Context) (ValidationResult, error) {
	return approveIf(d.mayTouch(ctx)), nil
}

// PermanentFreeze - PermanentFreezeDelegate payload
type PermanentFreeze struct {
	hooks
	Frozen bool `json:"frozen"`
}

// Type - the plugin tag
func (f *PermanentFreeze) Type() Type {
	return PermanentFreezeDelegate
}

func (f *PermanentFreeze) packData(buffer []byte) []byte {
	return wire.AppendBool(buffer, f.Frozen)
}

// ValidateTransfer - rejected while frozen
func (f *PermanentFreeze) ValidateTransfer(ctx *Context) (ValidationResult, error) {
	return rejectIf(f.Frozen), nil
}

// ValidateBurn - rejected while frozen
func (f *PermanentFreeze) ValidateBurn(ctx *Context) (ValidationResult, error) {
	return rejectIf(f.Frozen), nil
}

// ValidateRemovePlugin - cannot be removed while frozen
func (f *PermanentFreeze) ValidateRemovePlugin(ctx *Context) (ValidationResult, error) {
	return rejectIf(f.Frozen && ctx.targets(PermanentFreezeDelegate)), nil
}

// PermanentTransfer - PermanentTransferDelegate payload
type PermanentTransfer struct {
	hooks
}

// Type - the plugin tag
func (p *PermanentTransfer) Type() Type {
	return PermanentTransferDelegate
}

func (p *PermanentTransfer) packData(buffer []byte) []byte {
	return buffer
}

// ValidateTransfer - the authority overrides other restrictions
func (p *PermanentTransfer) ValidateTransfer(ctx *Context) (ValidationResult, error) {
	return forceIf(ctx.heldByCaller()), nil
}

// PermanentBurn - PermanentBurnDelegate payload
type PermanentBurn struct {
	hooks
}

// Type - the plugin tag
func (p *PermanentBurn) Type() Type {
	return PermanentBurnDelegate
}

func (p *PermanentBurn) packData(buffer []byte) []byte {
	return buffer
}

// ValidateBurn - the authority overrides other restrictions
func (p *PermanentBurn) ValidateBurn(ctx *Context) (ValidationResult, error) {
	return forceIf(ctx.heldByCaller()), nil
}

func approveIf(condition bool) ValidationResult {
	if condition {
		return Approved
	}
	return Pass
}

func rejectIf(condition bool) ValidationResult {
	if condition {
		return Rejected
	}
	return Pass
}

func forceIf(condition bool) ValidationResult {
	if condition {
		return ForceApproved
	}
	return Pass
}
