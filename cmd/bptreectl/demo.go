package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/Niko256/BP-Tree-Index/internal/btree"
	"github.com/Niko256/BP-Tree-Index/internal/config"
	"github.com/Niko256/BP-Tree-Index/internal/index"
	"github.com/Niko256/BP-Tree-Index/internal/logging"
)

// record is the sample entry type the demo indexes by UID, the Go
// analogue of the teacher's LDAP index.Entry kept deliberately generic
// rather than entry/attribute shaped.
type record struct {
	UID string
	Age int
}

// demoCmd builds a sample index.Index, runs a handful of lookups against
// it, and prints size/fill-factor stats. It exists to exercise
// internal/index, internal/config, and internal/logging end to end; it
// contains no business logic of its own.
func demoCmd(args []string) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "path to a TOML config file (optional)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bptreectl: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	log := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	keyFunc := func(r record) string { return r.UID }
	var ix *index.Index[string, record]
	if cfg.Index.Order != 0 {
		ix = index.NewWithOrder[string, record](cfg.Index.Order, btree.OrderedCompare[string](), keyFunc)
	} else {
		ix = index.New[string, record](btree.OrderedCompare[string](), keyFunc)
	}

	sample := []record{
		{UID: "uid=alice", Age: 30},
		{UID: "uid=bob", Age: 25},
		{UID: "uid=carol", Age: 40},
		{UID: "uid=dave", Age: 22},
	}
	for _, r := range sample {
		if err := ix.Insert(r); err != nil {
			log.Warn("skipping duplicate record", "uid", r.UID, "error", err.Error())
		}
	}
	log.Info("index built", "records", len(sample))

	if got, ok := ix.Find("uid=alice"); ok {
		fmt.Printf("find uid=alice -> age %d\n", got.Age)
	}

	inRange := ix.RangeSearch("uid=b", "uid=d")
	fmt.Printf("range [uid=b, uid=d] -> %d records\n", len(inRange))

	adults := ix.FindIf(func(r record) bool { return r.Age >= 30 })
	fmt.Printf("age >= 30 -> %d records\n", len(adults))

	fmt.Printf("size: %s entries, fill factor: %s\n",
		humanize.Comma(int64(ix.Size())),
		humanize.Ftoa(ix.FillFactor()))

	return 0
}
