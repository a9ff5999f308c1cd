// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetcore/fault"
	"github.com/bitmark-inc/assetcore/layout"
	"github.com/bitmark-inc/assetcore/plugin"
	"github.com/bitmark-inc/assetcore/processor"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultLevelDBDirectory = "data"
	defaultDatabaseName     = "assetcore.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "assetcore.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - where the LevelDB files live
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// RentType - storage rent parameters
type RentType struct {
	LamportsPerByteYear uint64 `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  uint64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
	StorageOverhead     uint64 `gluamapper:"storage_overhead" json:"storage_overhead"`
}

// CompressionType - compression feature switch
type CompressionType struct {
	Enabled bool `gluamapper:"enabled" json:"enabled"`
}

// JournalType - ZeroMQ endpoints the journal is published on
type JournalType struct {
	Publish []string `gluamapper:"publish" json:"publish"`
}

// LifecycleType - plugin names in the order they are consulted
type LifecycleType struct {
	Order []string `gluamapper:"order" json:"order"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Rent          RentType             `gluamapper:"rent" json:"rent"`
	Compression   CompressionType      `gluamapper:"compression" json:"compression"`
	Journal       JournalType          `gluamapper:"journal" json:"journal"`
	Lifecycle     LifecycleType        `gluamapper:"lifecycle" json:"lifecycle"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
//
// relative paths are resolved against the data directory and the
// database and log directories are created if missing
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabaseName,
		},

		Rent: RentType{
			LamportsPerByteYear: layout.DefaultLamportsPerByteYear,
			ExemptionThreshold:  layout.DefaultExemptionThreshold,
			StorageOverhead:     layout.DefaultStorageOverhead,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDirectory
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// fail if any of these are not simple file names, then add
	// the directory prefix where one applies
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = ensureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fault.ErrInvalidFileName
		}
	}

	// reject unknown plugin names early
	if _, err := options.order(); nil != err {
		return nil, err
	}

	return options, nil
}

// StorageRent - the rent parameters in layout form
func (c *Configuration) StorageRent() layout.StorageRent {
	return layout.StorageRent{
		LamportsPerByteYear: c.Rent.LamportsPerByteYear,
		ExemptionThreshold:  c.Rent.ExemptionThreshold,
		StorageOverhead:     c.Rent.StorageOverhead,
	}
}

// Processor - settings for processor.New
func (c *Configuration) Processor() processor.Configuration {
	order, _ := c.order()
	return processor.Configuration{
		Rent:        c.StorageRent(),
		Compression: c.Compression.Enabled,
		Order:       order,
	}
}

func (c *Configuration) order() ([]plugin.Type, error) {
	if 0 == len(c.Lifecycle.Order) {
		return nil, nil
	}
	order := make([]plugin.Type, 0, len(c.Lifecycle.Order))
	for _, name := range c.Lifecycle.Order {
		t, err := plugin.TypeFromString(name)
		if nil != err {
			return nil, err
		}
		order = append(order, t)
	}
	return order, nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
