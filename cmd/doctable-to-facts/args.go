package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// moduleArgs are the parameters delivered by the host automation
// framework's args file. All three are required.
type moduleArgs struct {
	Src     string   `json:"src"`
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
}

// readArgs loads and validates the module args file.
func readArgs(path string) (moduleArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return moduleArgs{}, fmt.Errorf("could not read module args file: %w", err)
	}

	var args moduleArgs
	if err := json.Unmarshal(data, &args); err != nil {
		return moduleArgs{}, fmt.Errorf("could not parse module args: %w", err)
	}

	return args, validateArgs(args)
}

// validateArgs enforces required-ness at the boundary, before the core
// is invoked. An empty headers list is allowed (it selects every
// table); an absent one is not.
func validateArgs(args moduleArgs) error {
	if args.Src == "" {
		return fmt.Errorf("missing required argument: src")
	}
	if args.Name == "" {
		return fmt.Errorf("missing required argument: name")
	}
	if args.Headers == nil {
		return fmt.Errorf("missing required argument: headers")
	}
	return nil
}
