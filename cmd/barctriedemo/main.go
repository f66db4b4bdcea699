// barctriedemo builds a bounded-distance trie over a barcode dictionary
// and serves approximate-match queries against it.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/basecall/barctrie"
)

var logger = log.New(os.Stderr, "barctriedemo: ", log.Ldate|log.Ltime)

func main() {
	app := cli.NewApp()
	app.Name = "barctriedemo"
	app.Usage = "index and query a bounded-distance ACGTN barcode trie"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "YAML config file supplying defaults for the flags below"},
		cli.StringFlag{Name: "dictionary", Usage: "newline-delimited barcode file"},
		cli.IntFlag{Name: "tau", Usage: "edit-distance bound (0-8)"},
		cli.IntFlag{Name: "bottom", Usage: "indexed barcode length; defaults to the length of the first dictionary line"},
	}
	app.Commands = []cli.Command{
		indexCommand(),
		searchCommand(),
		serveCommand(),
	}
	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%+v", err)
	}
}

// mergedConfig applies config-file defaults, then CLI flag overrides:
// a flag explicitly set on the command line always wins over the config
// file, which in turn wins over defaultConfig's baked-in defaults.
func mergedConfig(c *cli.Context) (config, error) {
	cfg, err := loadConfig(c.GlobalString("config"))
	if err != nil {
		return cfg, err
	}
	if c.GlobalIsSet("dictionary") {
		cfg.Dictionary = c.GlobalString("dictionary")
	}
	if c.GlobalIsSet("tau") {
		cfg.Tau = c.GlobalInt("tau")
	}
	if c.GlobalIsSet("bottom") {
		cfg.Bottom = c.GlobalInt("bottom")
	}
	return cfg, nil
}

// buildTrie opens cfg.Dictionary, sniffs a bottom depth if none was
// configured, and loads every barcode into a fresh trie.
func buildTrie(cfg config) (*barctrie.Trie, int, error) {
	if cfg.Dictionary == "" {
		return nil, 0, errors.New("no dictionary file configured")
	}
	bottom := cfg.Bottom
	if bottom == 0 {
		sniffed, err := sniffBarcodeLength(cfg.Dictionary)
		if err != nil {
			return nil, 0, err
		}
		bottom = sniffed
	}
	t, err := barctrie.NewTrie(cfg.Tau, bottom)
	if err != nil {
		return nil, 0, errors.Wrap(err, "construct trie")
	}
	f, err := os.Open(cfg.Dictionary)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "open dictionary %v", cfg.Dictionary)
	}
	defer f.Close()
	n, err := barctrie.LoadDictionaryCounts(t, f)
	if err != nil {
		return nil, 0, errors.Wrap(err, "load dictionary")
	}
	return t, n, nil
}

func indexCommand() cli.Command {
	return cli.Command{
		Name:  "index",
		Usage: "build a trie from a dictionary file and report counts",
		Action: func(c *cli.Context) error {
			cfg, err := mergedConfig(c)
			if err != nil {
				return err
			}
			t, n, err := buildTrie(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("indexed %d barcodes (tau=%d, bottom=%d)\n", n, cfg.Tau, t.Bottom())
			return nil
		},
	}
}

func searchCommand() cli.Command {
	return cli.Command{
		Name:  "search",
		Usage: "run one bounded-distance query against a dictionary file",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "query", Usage: "barcode to search for"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := mergedConfig(c)
			if err != nil {
				return err
			}
			t, _, err := buildTrie(cfg)
			if err != nil {
				return err
			}
			query := c.String("query")
			if query == "" {
				return errors.New("--query is required")
			}
			hits, err := barctrie.Search(nil, t, query, cfg.Tau, nil, 0, 0)
			if err != nil {
				return errors.Wrap(err, "search")
			}
			for i := 0; i < hits.Len(); i++ {
				fmt.Println(hits.At(i).Data)
			}
			if pending := barctrie.CheckTrieErrorAndReset(t); pending != nil {
				logger.Printf("search completed with a pending trie error: %+v", pending)
			}
			return nil
		},
	}
}
