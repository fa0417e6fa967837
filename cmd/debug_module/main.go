package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"feature-catalog/core/catalog"
	"feature-catalog/core/config"
	"feature-catalog/core/loader"
	"feature-catalog/core/logger"
	"feature-catalog/feature/modules"
)

// Loads the modules of the descriptor ids given as arguments with debug logging.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_module <id> [id...]")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	registry, err := cfg.Catalog.Open()
	if err != nil {
		log.Fatal(err)
	}

	table, err := modules.Table()
	if err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if err != nil {
		log.Fatal(err)
	}
	defer logg.Sync()

	var descriptors []catalog.Descriptor
	for _, arg := range os.Args[1:] {
		d, ok := registry.Lookup(arg)
		if !ok {
			fmt.Printf("%s: not in the catalogue\n", arg)
			continue
		}
		_, registered := table.Lookup(d.ID)
		fmt.Printf("%s: %s (%s) module registered: %v\n", d.ID, d.Metadata.Title, d.File, registered)
		descriptors = append(descriptors, d)
	}
	if len(descriptors) == 0 {
		return
	}

	report := loader.New(table, logg, cfg.Loader.Options()).Run(context.Background(), descriptors)
	for _, res := range report.Results {
		fmt.Printf("%s -> %s %s %s (%s)\n", res.ID, res.Status, res.Stage, res.Error, res.Duration)
	}
}
