package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sadopc/sidepane/internal/config"
)

func validateCmd() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sidepane validate [config.yaml] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Validate sidepane config files. Without arguments the default\n")
		fmt.Fprintf(os.Stderr, "config location is checked.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  sidepane validate\n")
		fmt.Fprintf(os.Stderr, "  sidepane validate ./sidepane.yaml\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	paths := fs.Args()
	if len(paths) == 0 {
		p, err := config.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		paths = []string{p}
	}

	hasErrors := false
	for _, path := range paths {
		if err := validateFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			hasErrors = true
		} else {
			fmt.Printf("OK   %s\n", path)
		}
	}

	if hasErrors {
		os.Exit(1)
	}
}

func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("file is empty")
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}
