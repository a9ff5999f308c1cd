// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/wire"
)

// OffsetKind - where the results start in an oracle cell
type OffsetKind uint8

// offset kinds, values are the stored tags
const (
	NoOffset     OffsetKind = 0
	AnchorOffset OffsetKind = 1
	CustomOffset OffsetKind = 2
)

// bytes skipped for AnchorOffset
const anchorDiscriminatorLength = 8

// ResultsOffset - position of the results within the oracle cell
type ResultsOffset struct {
	Kind   OffsetKind `json:"kind"`
	Custom uint64     `json:"custom,omitempty"`
}

// Offset - byte position of the results
func (r ResultsOffset) Offset() uint64 {
	switch r.Kind {
	case AnchorOffset:
		return anchorDiscriminatorLength
	case CustomOffset:
		return r.Custom
	default:
		return 0
	}
}

func (r ResultsOffset) pack(buffer []byte) []byte {
	buffer = wire.AppendUint8(buffer, uint8(r.Kind))
	if CustomOffset == r.Kind {
		buffer = wire.AppendUint64(buffer, r.Custom)
	}
	return buffer
}

func unpackResultsOffset(u *wire.Unpacker) ResultsOffset {
	r := ResultsOffset{Kind: OffsetKind(u.ReadUint8())}
	switch r.Kind {
	case NoOffset, AnchorOffset:
	case CustomOffset:
		r.Custom = u.ReadUint64()
	default:
		u.Fail(fault.ErrDeserialization)
	}
	return r
}

// Oracle - an adapter whose verdicts are read from another cell
type Oracle struct {
	BaseAddress   account.Address `json:"baseAddress"`
	ResultsOffset ResultsOffset   `json:"resultsOffset"`
}

// AdapterType - the adapter tag
func (o *Oracle) AdapterType() AdapterType {
	return OracleAdapter
}

// Key - keyed by the oracle cell address
func (o *Oracle) Key() AdapterKey {
	return AdapterKey{Type: OracleAdapter, Address: o.BaseAddress}
}

// DataAuthority - oracles have no data section
func (o *Oracle) DataAuthority() (authority.Authority, bool) {
	return authority.NoAuthority, false
}

func (o *Oracle) packData(buffer []byte) []byte {
	buffer = wire.AppendAddress(buffer, o.BaseAddress)
	return o.ResultsOffset.pack(buffer)
}

// oracle cell versions
const (
	oracleUninitialized = 0
	oracleV1            = 1
)

// OracleResults - the verdict of an oracle per event
type OracleResults struct {
	Create   ValidationResult `json:"create"`
	Transfer ValidationResult `json:"transfer"`
	Burn     ValidationResult `json:"burn"`
	Update   ValidationResult `json:"update"`
}

// Pack - stored V1 form
func (r *OracleResults) Pack() []byte {
	buffer := wire.AppendUint8(nil, oracleV1)
	buffer = wire.AppendUint8(buffer, uint8(r.Create))
	buffer = wire.AppendUint8(buffer, uint8(r.Transfer))
	buffer = wire.AppendUint8(buffer, uint8(r.Burn))
	return wire.AppendUint8(buffer, uint8(r.Update))
}

// Results - read the verdicts from the oracle cell data
func (o *Oracle) Results(data []byte) (*OracleResults, error) {
	offset := o.ResultsOffset.Offset()
	if offset > uint64(len(data)) {
		return nil, fault.ErrTruncatedRecord
	}
	u := wire.NewUnpacker(data[offset:])
	switch u.ReadUint8() {
	case oracleUninitialized:
		if nil == u.Err() {
			return nil, fault.ErrUninitialisedAccount
		}
	case oracleV1:
		r := &OracleResults{
			Create:   unpackExternalResult(u),
			Transfer: unpackExternalResult(u),
			Burn:     unpackExternalResult(u),
			Update:   unpackExternalResult(u),
		}
		if nil == u.Err() {
			return r, nil
		}
	}
	return nil, fault.ErrDeserialization
}

// Validate - the oracle's verdict for an event, limited by the flags
// the registry record grants it
func (o *Oracle) Validate(event Event, check ExternalCheck, data []byte) (ValidationResult, error) {
	results, err := o.Results(data)
	if nil != err {
		return Pass, err
	}
	var r ValidationResult
	switch event {
	case CreateEvent:
		r = results.Create
	case TransferEvent:
		r = results.Transfer
	case BurnEvent:
		r = results.Burn
	case UpdateEvent:
		r = results.Update
	default:
		return Pass, fault.ErrInvalidPluginSetting
	}
	switch {
	case Rejected == r && check.Has(CheckCanReject):
		return Rejected, nil
	case Approved == r && check.Has(CheckCanApprove):
		return Approved, nil
	default:
		return Pass, nil
	}
}

// an external verdict is Approved, Rejected or Pass
func unpackExternalResult(u *wire.Unpacker) ValidationResult {
	r := ValidationResult(u.ReadUint8())
	if r > Pass {
		u.Fail(fault.ErrDeserialization)
	}
	return r
}
