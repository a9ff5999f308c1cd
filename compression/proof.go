// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compression

import (
	"encoding/json"

	"github.com/bitmark-inc/assetcore/account"
	"github.com/bitmark-inc/assetcore/asset"
	"github.com/bitmark-inc/assetcore/authority"
	"github.com/bitmark-inc/assetcore/digest"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/wire"
)

// HashablePluginSchema - one plugin as it enters the hash
type HashablePluginSchema struct {
	Index     uint64              `json:"index"`
	Authority authority.Authority `json:"authority"`
	Plugin    plugin.Plugin       `json:"-"`
}

// HashedAssetSchema - the parts of the final hash
type HashedAssetSchema struct {
	AssetHash    digest.Digest   `json:"assetHash"`
	PluginHashes []digest.Digest `json:"pluginHashes"`
}

// Proof - the complete state of a compressed asset
type Proof struct {
	Owner           account.Address        `json:"owner"`
	UpdateAuthority authority.Holder       `json:"updateAuthority"`
	Name            string                 `json:"name"`
	URI             string                 `json:"uri"`
	Seq             uint64                 `json:"seq"`
	Plugins         []HashablePluginSchema `json:"plugins"`
}

// Pack - stored form of a plugin schema
func (s *HashablePluginSchema) Pack() []byte {
	buffer := wire.AppendUint64(nil, s.Index)
	buffer = s.Authority.Pack(buffer)
	return append(buffer, plugin.Pack(s.Plugin)...)
}

// Hash - the plugin's contribution to the asset hash
func (s *HashablePluginSchema) Hash() digest.Digest {
	return digest.NewDigest(s.Pack())
}

// Pack - stored form of the hash parts
func (s *HashedAssetSchema) Pack() []byte {
	buffer := append([]byte{}, s.AssetHash[:]...)
	buffer = wire.AppendLength(buffer, len(s.PluginHashes))
	for _, h := range s.PluginHashes {
		buffer = append(buffer, h[:]...)
	}
	return buffer
}

// Hash - the value written to a compressed cell
func (s *HashedAssetSchema) Hash() digest.Digest {
	return digest.NewDigest(s.Pack())
}

// Asset - the core record described by the proof
func (p *Proof) Asset() *asset.Asset {
	seq := p.Seq
	return &asset.Asset{
		Owner:           p.Owner,
		UpdateAuthority: p.UpdateAuthority,
		Name:            p.Name,
		URI:             p.URI,
		Seq:             &seq,
	}
}

// Schema - hash parts of the proof
func (p *Proof) Schema() (*HashedAssetSchema, error) {
	core, err := p.Asset().Pack()
	if nil != err {
		return nil, err
	}
	schema := &HashedAssetSchema{
		AssetHash:    digest.NewDigest(core),
		PluginHashes: make([]digest.Digest, len(p.Plugins)),
	}
	for i := range p.Plugins {
		if nil == p.Plugins[i].Plugin {
			return nil, fault.ErrInvalidPlugin
		}
		schema.PluginHashes[i] = p.Plugins[i].Hash()
	}
	return schema, nil
}

// Hash - hash of the full state
func (p *Proof) Hash() (digest.Digest, error) {
	schema, err := p.Schema()
	if nil != err {
		return digest.Digest{}, err
	}
	return schema.Hash(), nil
}

// Hashed - the compressed record for the proof
func (p *Proof) Hashed() (*asset.HashedAsset, error) {
	h, err := p.Hash()
	if nil != err {
		return nil, err
	}
	return &asset.HashedAsset{Hash: h}, nil
}

// Verify - check an untrusted proof against a compressed record
func Verify(hashed *asset.HashedAsset, p *Proof) error {
	if nil == p {
		return fault.ErrMissingCompressionProof
	}
	h, err := p.Hash()
	if nil != err {
		return err
	}
	if h != hashed.Hash {
		return fault.ErrIncorrectAssetHash
	}
	return nil
}

// Pack - binary form of a proof, used for the journal
func (p *Proof) Pack() ([]byte, error) {
	buffer := wire.AppendAddress(nil, p.Owner)
	buffer = p.UpdateAuthority.Pack(buffer)
	buffer = wire.AppendString(buffer, p.Name)
	buffer = wire.AppendString(buffer, p.URI)
	buffer = wire.AppendUint64(buffer, p.Seq)
	buffer = wire.AppendLength(buffer, len(p.Plugins))
	for i := range p.Plugins {
		if nil == p.Plugins[i].Plugin {
			return nil, fault.ErrInvalidPlugin
		}
		buffer = append(buffer, p.Plugins[i].Pack()...)
	}
	return buffer, nil
}

// smallest packed plugin schema: index, authority tag, plugin tag
const minimumSchemaLength = 8 + 1 + 1

// Unpack - proof from its binary form
func Unpack(data []byte) (*Proof, error) {
	u := wire.NewUnpacker(data)
	p := &Proof{
		Owner:           u.ReadAddress(),
		UpdateAuthority: authority.UnpackHolder(u),
		Name:            u.ReadString(),
		URI:             u.ReadString(),
		Seq:             u.ReadUint64(),
	}
	count := u.ReadLength(minimumSchemaLength)
	p.Plugins = make([]HashablePluginSchema, 0, count)
	for i := 0; i < count; i += 1 {
		p.Plugins = append(p.Plugins, HashablePluginSchema{
			Index:     u.ReadUint64(),
			Authority: authority.Unpack(u),
			Plugin:    plugin.Read(u),
		})
	}
	if nil != u.Err() || 0 != u.Remaining() {
		return nil, fault.ErrDeserialization
	}
	return p, nil
}

type schemaJSON struct {
	Index     uint64              `json:"index"`
	Authority authority.Authority `json:"authority"`
	Plugin    json.RawMessage     `json:"plugin"`
}

// MarshalJSON - plugin in its tagged JSON form
func (s HashablePluginSchema) MarshalJSON() ([]byte, error) {
	if nil == s.Plugin {
		return nil, fault.ErrInvalidPlugin
	}
	p, err := plugin.Encode(s.Plugin)
	if nil != err {
		return nil, err
	}
	return json.Marshal(schemaJSON{Index: s.Index, Authority: s.Authority, Plugin: p})
}

// UnmarshalJSON - read the tagged JSON form
func (s *HashablePluginSchema) UnmarshalJSON(buffer []byte) error {
	j := schemaJSON{}
	if err := json.Unmarshal(buffer, &j); nil != err {
		return err
	}
	p, err := plugin.Decode(j.Plugin)
	if nil != err {
		return err
	}
	s.Index = j.Index
	s.Authority = j.Authority
	s.Plugin = p
	return nil
}
