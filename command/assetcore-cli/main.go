// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetcore/configuration"
	"github.com/bitmark-inc/assetcore/journal"
	"github.com/bitmark-inc/assetcore/processor"
	"github.com/bitmark-inc/assetcore/storage"
)

type metadata struct {
	file      string
	config    *configuration.Configuration
	database  *processor.Database
	processor *processor.Processor
	publisher *journal.Publisher
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "assetcore-cli"
	app.Usage = "operate on digital asset cells"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "assetcore.conf",
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "caller, a",
			Value: "",
			Usage: " signing `ADDRESS`",
		},
		cli.StringFlag{
			Name:  "payer, p",
			Value: "",
			Usage: " `ADDRESS` paying for storage [default caller]",
		},
		cli.StringFlag{
			Name:  "authority, u",
			Value: "",
			Usage: " `ADDRESS` whose roles are checked [default caller]",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// commands that do not touch the database
		switch c.Args().First() {
		case "", "help", "h", "generate", "version":
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}
		m.file = file

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		theConfiguration, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}
		m.config = theConfiguration

		if err := logger.Initialise(theConfiguration.Logging); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", theConfiguration)

		if err := storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite); nil != err {
			log.Criticalf("storage initialise error: %s", err)
			return err
		}

		if 0 != len(theConfiguration.Journal.Publish) {
			publisher, err := journal.NewPublisher(theConfiguration.Journal.Publish)
			if nil != err {
				log.Criticalf("journal publisher error: %s", err)
				return err
			}
			m.publisher = publisher
		}

		m.database = processor.NewDatabase(m.publisher)
		m.processor = processor.New(m.database, theConfiguration.Processor())
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.config {
			return nil
		}
		if nil != m.publisher {
			m.publisher.Close()
		}
		storage.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key pair and its address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " rebuild from an existing hex `SEED`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "fund",
			Usage:     "add lamports to a cell",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("address", "*cell to fund"),
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*lamports to add `COUNT`",
				},
			},
			Action: runFund,
		},
		{
			Name:      "create",
			Usage:     "create an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("asset", "*new asset cell"),
				addressFlag("owner", " owner [default caller]"),
				addressFlag("update-authority", " update authority [default caller]"),
				addressFlag("collection", " join this collection"),
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "uri, U",
					Value: "",
					Usage: "*asset uri `URI`",
				},
				pluginsFlag(),
				adaptersFlag(),
				cli.BoolFlag{
					Name:  "compressed, z",
					Usage: " store only the hash, proof goes to the journal",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an asset to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("asset", "*asset"),
				addressFlag("new-owner", "*receiver"),
			},
			Action: runTransfer,
		},
		{
			Name:      "burn",
			Usage:     "burn an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("asset", "*asset"),
			},
			Action: runBurn,
		},
		{
			Name:      "update",
			Usage:     "change an asset name, uri or update authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("asset", "*asset"),
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: " new name `STRING`",
				},
				cli.StringFlag{
					Name:  "uri, U",
					Value: "",
					Usage: " new uri `URI`",
				},
				cli.StringFlag{
					Name:  "update-authority",
					Value: "",
					Usage: " new update authority `HOLDER` [None|Address:<base58>]",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "compress",
			Usage:     "replace an asset by its hash",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("asset", "*asset"),
			},
			Action: runCompress,
		},
		{
			Name:      "decompress",
			Usage:     "restore a compressed asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("asset", "*asset"),
			},
			Action: runDecompress,
		},
		{
			Name:  "collection",
			Usage: "collection operations",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "create a collection",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("collection", "*new collection cell"),
						addressFlag("update-authority", " update authority [default caller]"),
						cli.StringFlag{
							Name:  "name, N",
							Value: "",
							Usage: "*collection name `STRING`",
						},
						cli.StringFlag{
							Name:  "uri, U",
							Value: "",
							Usage: "*collection uri `URI`",
						},
						pluginsFlag(),
						adaptersFlag(),
					},
					Action: runCreateCollection,
				},
				{
					Name:      "update",
					Usage:     "change a collection name, uri or update authority",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("collection", "*collection"),
						cli.StringFlag{
							Name:  "name, N",
							Value: "",
							Usage: " new name `STRING`",
						},
						cli.StringFlag{
							Name:  "uri, U",
							Value: "",
							Usage: " new uri `URI`",
						},
						addressFlag("update-authority", " new update authority"),
					},
					Action: runUpdateCollection,
				},
				{
					Name:      "burn",
					Usage:     "burn an empty collection",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("collection", "*collection"),
					},
					Action: runBurnCollection,
				},
			},
		},
		{
			Name:  "plugin",
			Usage: "plugin operations on an asset or (with --collection) a collection",
			Subcommands: []cli.Command{
				{
					Name:      "add",
					Usage:     "add a plugin",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("address", "*asset or collection"),
						collectionFlag(),
						cli.StringFlag{
							Name:  "plugin, P",
							Value: "",
							Usage: "*plugin `JSON` {\"type\": ..., \"data\": {...}}",
						},
						cli.StringFlag{
							Name:  "plugin-authority",
							Value: "",
							Usage: " managing `AUTHORITY` [Owner|UpdateAuthority|None|<base58>]",
						},
					},
					Action: runAddPlugin,
				},
				{
					Name:      "remove",
					Usage:     "remove a plugin",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("address", "*asset or collection"),
						collectionFlag(),
						pluginTypeFlag(),
					},
					Action: runRemovePlugin,
				},
				{
					Name:      "update",
					Usage:     "replace a plugin's data",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("address", "*asset or collection"),
						collectionFlag(),
						cli.StringFlag{
							Name:  "plugin, P",
							Value: "",
							Usage: "*plugin `JSON` {\"type\": ..., \"data\": {...}}",
						},
					},
					Action: runUpdatePlugin,
				},
				{
					Name:      "approve",
					Usage:     "delegate a plugin's authority",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("address", "*asset or collection"),
						collectionFlag(),
						pluginTypeFlag(),
						cli.StringFlag{
							Name:  "plugin-authority",
							Value: "",
							Usage: "*new `AUTHORITY` [Owner|UpdateAuthority|None|<base58>]",
						},
					},
					Action: runApprovePlugin,
				},
				{
					Name:      "revoke",
					Usage:     "return a plugin's authority to its manager",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("address", "*asset or collection"),
						collectionFlag(),
						pluginTypeFlag(),
					},
					Action: runRevokePlugin,
				},
			},
		},
		{
			Name:  "adapter",
			Usage: "external plugin adapter operations",
			Subcommands: []cli.Command{
				{
					Name:      "add",
					Usage:     "attach an adapter",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("address", "*asset or collection"),
						collectionFlag(),
						cli.StringFlag{
							Name:  "adapter, A",
							Value: "",
							Usage: "*adapter `JSON` {\"adapter\": {\"type\": ..., \"data\": {...}}, \"checks\": [...]}",
						},
					},
					Action: runAddAdapter,
				},
				{
					Name:      "remove",
					Usage:     "detach an adapter",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("address", "*asset or collection"),
						collectionFlag(),
						adapterKeyFlag(),
					},
					Action: runRemoveAdapter,
				},
				{
					Name:      "write",
					Usage:     "replace an adapter's data section",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						addressFlag("address", "*asset or collection"),
						adapterKeyFlag(),
						cli.StringFlag{
							Name:  "data, d",
							Value: "",
							Usage: "*data `STRING`",
						},
					},
					Action: runWriteAdapterData,
				},
			},
		},
		{
			Name:      "show",
			Usage:     "decode a cell",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("address", "*cell"),
			},
			Action: runShow,
		},
		{
			Name:      "journal",
			Usage:     "list journal entries",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first `SEQUENCE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum entries `COUNT`",
				},
			},
			Action: runJournal,
		},
		{
			Name:   "version",
			Usage:  "display assetcore-cli version",
			Action: runVersion,
		},
	}
}

func addressFlag(name string, usage string) cli.Flag {
	return cli.StringFlag{
		Name:  name,
		Value: "",
		Usage: usage + " `ADDRESS`",
	}
}

func collectionFlag() cli.Flag {
	return cli.BoolFlag{
		Name:  "collection, C",
		Usage: " address is a collection",
	}
}

func pluginTypeFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "type, t",
		Value: "",
		Usage: "*plugin `TYPE` name",
	}
}

func pluginsFlag() cli.Flag {
	return cli.StringSliceFlag{
		Name:  "plugin, P",
		Usage: " plugin `JSON`, may be repeated",
	}
}

func adaptersFlag() cli.Flag {
	return cli.StringSliceFlag{
		Name:  "adapter, A",
		Usage: " adapter `JSON`, may be repeated",
	}
}

func adapterKeyFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "key, k",
		Value: "",
		Usage: "*adapter key `JSON` {\"type\": ..., \"address\": ..., \"authority\": ...}",
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
