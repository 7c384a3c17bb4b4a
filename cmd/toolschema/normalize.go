package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	normalizer "github.com/mutablelogic/go-toolschema/pkg/normalizer"
	version "github.com/mutablelogic/go-toolschema/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type NormalizeCmd struct {
	Path        string   `arg:"" optional:"" help:"Schema file (JSON or YAML), or - for stdin"`
	Format      string   `name:"format" enum:"auto,json,yaml" default:"auto" help:"Input format"`
	Deny        []string `name:"deny" help:"Additional keywords to strip"`
	Allow       []string `name:"allow" help:"Keywords to keep"`
	Composition string   `name:"composition" enum:"merge,last-wins,reject" default:"merge" help:"Policy when oneOf/allOf collides with anyOf"`
	Compact     bool     `name:"compact" help:"Compact JSON output"`
}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *NormalizeCmd) Run(globals *Globals) error {
	data, source, err := cmd.read()
	if err != nil {
		return err
	}
	slog.Debug("read schema", "source", source, "bytes", len(data))

	// Normalization options
	composition, err := normalizer.ParseComposition(cmd.Composition)
	if err != nil {
		return err
	}
	opts := []toolschema.Opt{
		toolschema.WithComposition(composition),
	}
	if len(cmd.Deny) > 0 {
		opts = append(opts, toolschema.WithDeny(cmd.Deny...))
	}
	if len(cmd.Allow) > 0 {
		opts = append(opts, toolschema.WithAllow(cmd.Allow...))
	}

	// Normalize
	format := cmd.Format
	if format == "auto" {
		format = detectFormat(source, data)
	}
	slog.Debug("input format", "format", format)

	var schema *toolschema.Schema
	if format == "yaml" {
		schema, err = toolschema.FromYAML(data, opts...)
	} else {
		schema, err = toolschema.FromJSON(data, opts...)
	}
	if err != nil {
		return err
	}

	// Write out
	if cmd.Compact {
		data, err := schema.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		fmt.Println(schema)
	}
	return nil
}

func (cmd *VersionCmd) Run(globals *Globals) error {
	fmt.Println(string(version.JSON(execName())))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *NormalizeCmd) read() ([]byte, string, error) {
	if cmd.Path == "" || cmd.Path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "-", err
	}
	data, err := os.ReadFile(cmd.Path)
	return data, cmd.Path, err
}

// detectFormat picks the input format from the file extension, falling
// back to content sniffing for stdin and extensionless paths: a
// document opening with a brace, bracket or quote is JSON, anything
// else is YAML.
func detectFormat(source string, data []byte) string {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '{', '[', '"':
			return "json"
		}
	}
	return "yaml"
}
