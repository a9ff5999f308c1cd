// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

// Validator - the lifecycle hooks of a plugin
type Validator interface {
	ValidateCreate(ctx *Context) (ValidationResult, error)
	ValidateUpdate(ctx *Context) (ValidationResult, error)
	ValidateTransfer(ctx *Context) (ValidationResult, error)
	ValidateBurn(ctx *Context) (ValidationResult, error)
	ValidateCompress(ctx *Context) (ValidationResult, error)
	ValidateDecompress(ctx *Context) (ValidationResult, error)
	ValidateAddPlugin(ctx *Context) (ValidationResult, error)
	ValidateRemovePlugin(ctx *Context) (ValidationResult, error)
	ValidateUpdatePlugin(ctx *Context) (ValidationResult, error)
	ValidateApprovePluginAuthority(ctx *Context) (ValidationResult, error)
	ValidateRevokePluginAuthority(ctx *Context) (ValidationResult, error)
	ValidateAddExternalPluginAdapter(ctx *Context) (ValidationResult, error)
	ValidateRemoveExternalPluginAdapter(ctx *Context) (ValidationResult, error)
}

// Plugin - one of the payload types of this package
type Plugin interface {
	Validator
	Type() Type
	packData(buffer []byte) []byte
}

// hooks - embedded in every payload, all hooks Pass
type hooks struct{}

func (hooks) ValidateCreate(ctx *Context) (ValidationResult, error)       { return Pass, nil }
func (hooks) ValidateUpdate(ctx *Context) (ValidationResult, error)       { return Pass, nil }
func (hooks) ValidateTransfer(ctx *Context) (ValidationResult, error)     { return Pass, nil }
func (hooks) ValidateBurn(ctx *Context) (ValidationResult, error)         { return Pass, nil }
func (hooks) ValidateCompress(ctx *Context) (ValidationResult, error)     { return Pass, nil }
func (hooks) ValidateDecompress(ctx *Context) (ValidationResult, error)   { return Pass, nil }
func (hooks) ValidateAddPlugin(ctx *Context) (ValidationResult, error)    { return Pass, nil }
func (hooks) ValidateRemovePlugin(ctx *Context) (ValidationResult, error) { return Pass, nil }
func (hooks) ValidateUpdatePlugin(ctx *Context) (ValidationResult, error) { return Pass, nil }

func (hooks) ValidateApprovePluginAuthority(ctx *Context) (ValidationResult, error) {
	return Pass, nil
}

func (hooks) ValidateRevokePluginAuthority(ctx *Context) (ValidationResult, error) {
	return Pass, nil
}

func (hooks) ValidateAddExternalPluginAdapter(ctx *Context) (ValidationResult, error) {
	return Pass, nil
}

func (hooks) ValidateRemoveExternalPluginAdapter(ctx *Context) (ValidationResult, error) {
	return Pass, nil
}

// a plugin's authority may remove the plugin or give up its authority
// unless the plugin's own hook decided otherwise
func ownAuthority(p Plugin, ctx *Context, result ValidationResult, err error) (ValidationResult, error) {
	if nil != err || Pass != result {
		return result, err
	}
	if ctx.targets(p.Type()) && ctx.heldByCaller() {
		return Approved, nil
	}
	return Pass, nil
}

// Validate - call the hook of p for an operation
func Validate(p Plugin, op Operation, ctx *Context) (ValidationResult, error) {
	switch op {
	case Create:
		return p.ValidateCreate(ctx)
	case Update:
		return p.ValidateUpdate(ctx)
	case Transfer:
		return p.ValidateTransfer(ctx)
	case Burn:
		return p.ValidateBurn(ctx)
	case Compress:
		return p.ValidateCompress(ctx)
	case Decompress:
		return p.ValidateDecompress(ctx)
	case AddPlugin:
		return p.ValidateAddPlugin(ctx)
	case RemovePlugin:
		result, err := p.ValidateRemovePlugin(ctx)
		return ownAuthority(p, ctx, result, err)
	case UpdatePlugin:
		return p.ValidateUpdatePlugin(ctx)
	case ApprovePluginAuthority:
		return p.ValidateApprovePluginAuthority(ctx)
	case RevokePluginAuthority:
		result, err := p.ValidateRevokePluginAuthority(ctx)
		return ownAuthority(p, ctx, result, err)
	case AddExternalPluginAdapter:
		return p.ValidateAddExternalPluginAdapter(ctx)
	case RemoveExternalPluginAdapter:
		return p.ValidateRemoveExternalPluginAdapter(ctx)
	default:
		return Pass, fault.ErrInvalidPlugin
	}
}

// Pack - stored form: type tag followed by the payload
func Pack(p Plugin) []byte {
	buffer := wire.AppendUint8(nil, uint8(p.Type()))
	return p.packData(buffer)
}

// Unpack - read a plugin from the start of a buffer
//
// returns the plugin and the number of bytes it occupies
func Unpack(data []byte) (Plugin, uint64, error) {
	u := wire.NewUnpacker(data)
	p := Read(u)
	if nil != u.Err() {
		return nil, 0, fault.ErrDeserialization
	}
	return p, uint64(u.Offset()), nil
}

// Read - read the next plugin, failures are recorded in the unpacker
func Read(u *wire.Unpacker) Plugin {
	switch t := Type(u.ReadUint8()); t {
	case Royalties:
		return unpackRoyalties(u)
	case FreezeDelegate:
		return &Freeze{Frozen: u.ReadBool()}
	case BurnDelegate:
		return &BurnDelegation{}
	case TransferDelegate:
		return &TransferDelegation{}
	case UpdateDelegate:
		return &UpdateDelegation{AdditionalDelegates: u.ReadAddresses()}
	case PermanentFreezeDelegate:
		return &PermanentFreeze{Frozen: u.ReadBool()}
	case Attributes:
		return unpackAttributeList(u)
	case PermanentTransferDelegate:
		return &PermanentTransfer{}
	case PermanentBurnDelegate:
		return &PermanentBurn{}
	case Edition:
		return &EditionNumber{Number: u.ReadUint32()}
	case MasterEdition:
		return &Master{
			MaxSupply: u.ReadOptionalUint32(),
			Name:      u.ReadOptionalString(),
			URI:       u.ReadOptionalString(),
		}
	case AddBlocker:
		return &Blocker{}
	case ImmutableMetadata:
		return &Immutable{}
	default:
		u.Fail(fault.ErrDeserialization)
		return nil
	}
}

// New - an empty payload of a given type
func New(t Type) (Plugin, error) {
	switch t {
	case Royalties:
		return &RoyaltySplit{}, nil
	case FreezeDelegate:
		return &Freeze{}, nil
	case BurnDelegate:
		return &BurnDelegation{}, nil
	case TransferDelegate:
		return &TransferDelegation{}, nil
	case UpdateDelegate:
		return &UpdateDelegation{}, nil
	case PermanentFreezeDelegate:
		return &PermanentFreeze{}, nil
	case Attributes:
		return &AttributeList{}, nil
	case PermanentTransferDelegate:
		return &PermanentTransfer{}, nil
	case PermanentBurnDelegate:
		return &PermanentBurn{}, nil
	case Edition:
		return &EditionNumber{}, nil
	case MasterEdition:
		return &Master{}, nil
	case AddBlocker:
		return &Blocker{}, nil
	case ImmutableMetadata:
		return &Immutable{}, nil
	default:
		return nil, fault.ErrInvalidPlugin
	}
}
