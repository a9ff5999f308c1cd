// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package plugin

import (
	"encoding/json"

	"github.com/bitmark-inc/assetcore/fault"
)

// JSON form of a plugin: {"type": "FreezeDelegate", "data": {"frozen": true}}
type envelope struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// JSON form of an adapter: {"type": "Oracle", "data": {...}}
type adapterEnvelope struct {
	Type AdapterType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Encode - JSON form of a plugin
func Encode(p Plugin) ([]byte, error) {
	data, err := json.Marshal(p)
	if nil != err {
		return nil, err
	}
	return json.Marshal(envelope{Type: p.Type(), Data: data})
}

// Decode - plugin from its JSON form, data may be omitted for
// payloads without fields
func Decode(buffer []byte) (Plugin, error) {
	e := envelope{}
	if err := json.Unmarshal(buffer, &e); nil != err {
		return nil, err
	}
	p, err := New(e.Type)
	if nil != err {
		return nil, err
	}
	if 0 != len(e.Data) {
		if err := json.Unmarshal(e.Data, p); nil != err {
			return nil, err
		}
	}
	return p, nil
}

// EncodeAdapter - JSON form of an adapter
func EncodeAdapter(a Adapter) ([]byte, error) {
	data, err := json.Marshal(a)
	if nil != err {
		return nil, err
	}
	return json.Marshal(adapterEnvelope{Type: a.AdapterType(), Data: data})
}

// DecodeAdapter - adapter from its JSON form
func DecodeAdapter(buffer []byte) (Adapter, error) {
	e := adapterEnvelope{}
	if err := json.Unmarshal(buffer, &e); nil != err {
		return nil, err
	}
	var a Adapter
	switch e.Type {
	case LifecycleHookAdapter:
		a = &LifecycleHook{}
	case OracleAdapter:
		a = &Oracle{}
	case AppDataAdapter:
		a = &AppData{}
	default:
		return nil, fault.ErrInvalidPlugin
	}
	if err := json.Unmarshal(e.Data, a); nil != err {
		return nil, err
	}
	return a, nil
}
