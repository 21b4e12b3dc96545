package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sadopc/sidepane/internal/config"
)

func optionsCmd() {
	fs := flag.NewFlagSet("options", flag.ExitOnError)
	configFlag := fs.String("config", "", "Path to a config file")
	jsonFlag := fs.Bool("json", false, "Print JSON instead of YAML")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sidepane options [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Print the sidebar options the TUI would start with.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sidepane options\n")
		fmt.Fprintf(os.Stderr, "  sidepane options --config ./sidepane.yaml --json\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(configExitCode(err))
	}

	if err := writeOptions(os.Stdout, cfg.Sidebar, *jsonFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeOptions(w io.Writer, sc config.SidebarConfig, asJSON bool) error {
	var (
		out []byte
		err error
	)
	if asJSON {
		out, err = sc.JSON()
	} else {
		out, err = sc.YAML()
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
