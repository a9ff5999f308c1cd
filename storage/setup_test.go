// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetcore/storage"
)

// common test setup routines

type testDatabase struct {
	directory string
	name      string
}

// configure for testing
func setup(t *testing.T) *testDatabase {
	directory, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}

	logging := logger.Configuration{
		Directory: directory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	d := &testDatabase{
		directory: directory,
		name:      filepath.Join(directory, "test.leveldb"),
	}
	err = storage.Initialise(d.name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return d
}

// post test cleanup
func (d *testDatabase) teardown() {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(d.directory)
}

// close and open again
func (d *testDatabase) reopen(t *testing.T, readOnly bool) {
	storage.Finalise()
	err := storage.Initialise(d.name, readOnly)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
}
