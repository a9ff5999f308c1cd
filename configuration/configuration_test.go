// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/assetcore/configuration"
	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
)

func writeConfiguration(t *testing.T, text string) (string, string) {
	directory, err := ioutil.TempDir("", "configuration-test")
	require.Nil(t, err, "temp dir")
	fileName := filepath.Join(directory, "assetcore.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration")
	return directory, fileName
}

func TestDefaults(t *testing.T) {
	directory, fileName := writeConfiguration(t, `return {}`)
	defer os.RemoveAll(directory)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "get configuration")

	assert.Equal(t, filepath.Join(directory, "data"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(directory, "data", "assetcore.leveldb"), c.Database.Name, "database name")
	assert.Equal(t, filepath.Join(directory, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "assetcore.log", c.Logging.File, "log file")
	assert.Equal(t, layout.DefaultRent, c.StorageRent(), "rent")
	assert.False(t, c.Compression.Enabled, "compression")
	assert.Empty(t, c.Journal.Publish, "publish")

	p := c.Processor()
	assert.Nil(t, p.Order, "order")
	assert.False(t, p.Compression, "processor compression")

	for _, d := range []string{c.Database.Directory, c.Logging.Directory} {
		info, err := os.Stat(d)
		require.Nil(t, err, "stat: %s", d)
		assert.True(t, info.IsDir(), "is directory: %s", d)
	}
}

func TestSettings(t *testing.T) {
	directory, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.database = {
    directory = "db",
    name = "cells.leveldb",
}
M.rent = {
    lamports_per_byte_year = 10,
    exemption_threshold = 1,
    storage_overhead = 0,
}
M.compression = {
    enabled = true,
}
M.journal = {
    publish = {
        "tcp://127.0.0.1:2140",
        "ipc:///tmp/assetcore.journal",
    },
}
M.lifecycle = {
    order = { "FreezeDelegate", "royalties" },
}
M.logging = {
    size = 2048,
    count = 3,
    levels = {
        DEFAULT = "debug",
        processor = "warn",
    },
}
return M
`)
	defer os.RemoveAll(directory)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "get configuration")

	assert.Equal(t, filepath.Join(directory, "db", "cells.leveldb"), c.Database.Name, "database name")
	assert.Equal(t, layout.StorageRent{LamportsPerByteYear: 10, ExemptionThreshold: 1}, c.StorageRent(), "rent")
	assert.Equal(t, []string{"tcp://127.0.0.1:2140", "ipc:///tmp/assetcore.journal"}, c.Journal.Publish, "publish")
	assert.Equal(t, 2048, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.Equal(t, "warn", c.Logging.Levels["processor"], "processor level")

	p := c.Processor()
	assert.True(t, p.Compression, "processor compression")
	assert.Equal(t, []plugin.Type{plugin.FreezeDelegate, plugin.Royalties}, p.Order, "order")
	assert.Equal(t, uint64(10*1*(0+5)), p.Rent.MinimumBalance(5), "rent balance")
}

func TestInvalid(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{`return { data_directory = "" }`, fault.ErrInvalidDirectory},
		{`return { database = { name = "x/y.leveldb" } }`, fault.ErrInvalidFileName},
		{`return { lifecycle = { order = { "NoSuchPlugin" } } }`, fault.ErrInvalidPlugin},
		{`return 7`, fault.ErrInvalidConfiguration},
	}

	for i, item := range items {
		directory, fileName := writeConfiguration(t, item.text)
		_, err := configuration.GetConfiguration(fileName)
		assert.Equal(t, item.err, err, "%d: error", i)
		os.RemoveAll(directory)
	}
}

func TestLuaError(t *testing.T) {
	directory, fileName := writeConfiguration(t, `return {`)
	defer os.RemoveAll(directory)

	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "syntax error")
}

func TestArgGlobal(t *testing.T) {
	directory, fileName := writeConfiguration(t, `return { database = { name = (arg[0]:match("([^/]+)$")) .. ".db" } }`)
	defer os.RemoveAll(directory)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "get configuration")
	assert.Equal(t, filepath.Join(directory, "data", "assetcore.conf.db"), c.Database.Name, "name from arg")
}

func TestNotStructPointer(t *testing.T) {
	var c configuration.Configuration
	err := configuration.ParseConfigurationFile("unused.conf", c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")
}
