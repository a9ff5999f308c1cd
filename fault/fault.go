// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised            = ExistsError("already initialised")
	ErrAssetAlreadyExists            = ExistsError("asset already exists")
	ErrCannotAddPermanentPlugin      = InvalidError("permanent plugin can only be added at creation")
	ErrCannotBurnCollection          = InvalidError("collection still has assets")
	ErrCannotRevoke                  = InvalidError("plugin authority is already its manager")
	ErrCollectionAlreadyExists       = ExistsError("collection already exists")
	ErrDeserialization               = RecordError("deserialization failed")
	ErrExternalPluginAdapterExists   = ExistsError("external plugin adapter already exists")
	ErrExternalPluginAdapterNotFound = NotFoundError("external plugin adapter not found")
	ErrIncorrectAccount              = InvalidError("incorrect account")
	ErrIncorrectAssetHash            = InvalidError("incorrect asset hash")
	ErrInsufficientFunds             = InvalidError("insufficient funds for storage")
	ErrInvalidAddress                = InvalidError("invalid address")
	ErrInvalidAuthority              = AuthorityError("invalid authority")
	ErrInvalidCollection             = InvalidError("invalid collection")
	ErrInvalidConfiguration          = InvalidError("configuration file must return a table")
	ErrInvalidCount                  = InvalidError("invalid count")
	ErrInvalidCursor                 = InvalidError("invalid cursor")
	ErrInvalidDigest                 = InvalidError("invalid digest")
	ErrInvalidDirectory              = InvalidError("invalid directory")
	ErrInvalidFileName               = InvalidError("file name must not contain a path")
	ErrInvalidPlugin                 = InvalidError("invalid plugin")
	ErrInvalidPluginSetting          = InvalidError("invalid plugin setting")
	ErrInvalidStructPointer          = InvalidError("invalid struct pointer")
	ErrInvalidText                   = InvalidError("text is not valid utf-8")
	ErrJournalEntryNotFound          = NotFoundError("journal entry not found")
	ErrMissingCollection             = InvalidError("missing collection")
	ErrMissingCompressionProof       = InvalidError("missing compression proof")
	ErrMissingNewOwner               = InvalidError("missing new owner")
	ErrNameTooLong                   = LengthError("name too long")
	ErrNoApprovals                   = AuthorityError("no approvals")
	ErrNoDataSection                 = InvalidError("external plugin adapter has no data section")
	ErrNotAvailable                  = ProcessError("feature not available")
	ErrNotCompressed                 = InvalidError("asset is not compressed")
	ErrNotInitialised                = NotFoundError("not initialised")
	ErrNumericalOverflow             = LengthError("numerical overflow")
	ErrPluginAlreadyExists           = ExistsError("plugin already exists")
	ErrPluginNotFound                = NotFoundError("plugin not found")
	ErrPluginsNotInitialised         = NotFoundError("plugins not initialised")
	ErrTransactionInUse              = ProcessError("transaction already in use")
	ErrTruncatedRecord               = RecordError("truncated record")
	ErrUninitialisedAccount          = NotFoundError("uninitialised account")
	ErrUnexpectedKey                 = RecordError("unexpected key")
	ErrUnsupportedExternalCheck      = InvalidError("unsupported external plugin adapter check")
	ErrURITooLong                    = LengthError("uri too long")
	ErrWrongDatabaseVersion          = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorityError) Error() string { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RecordError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAuthority(e error) bool { _, ok := e.(AuthorityError); return ok }
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool    { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool    { _, ok := e.(RecordError); return ok }
