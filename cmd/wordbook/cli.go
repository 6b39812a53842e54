package main

import (
	"context"
	"io"

	"github.com/mwielgus/wordbook"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     wordbook.Config
	Fetcher    wordbook.Fetcher
	Discoverer wordbook.Discoverer
	Extractor  wordbook.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `help:"Path to a YAML config file" type:"existingfile" optional:""`

	Scrape  ScrapeCmd  `cmd:"" help:"Discover word pages from the archives and update the word list"`
	Extract ExtractCmd `cmd:"" help:"Extract meaning and usage for every pending word"`
	Status  StatusCmd  `cmd:"" help:"Report scraping and extraction progress"`
	Serve   ServeCmd   `cmd:"" help:"Serve the browse and study API over the extracted words"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	WordsFile string `help:"Word list file (overrides config)" optional:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	WordsFile  string `help:"Word list file (overrides config)" optional:""`
	OutputFile string `help:"Output record file (overrides config)" optional:""`
	Resume     bool   `default:"true" negatable:"" help:"Skip words already in the output file"`
	Delay      int    `default:"-1" help:"Seconds to wait between page fetches (overrides config)"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	WordsFile  string `help:"Word list file (overrides config)" optional:""`
	OutputFile string `help:"Output record file (overrides config)" optional:""`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string `default:"127.0.0.1:8080" help:"Listen address"`
	OutputFile string `help:"Output record file (overrides config)" optional:""`
}
