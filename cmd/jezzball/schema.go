package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newmanne/jezzball/internal/config"
)

var flagSchemaDefaults string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config JSON Schema",
	Long: `Print a JSON Schema describing the config file, or with --defaults,
the built-in defaults in YAML or TOML.

Examples:
  jezzball schema > jezzball.schema.json
  jezzball schema --defaults toml > jezzball.toml`,
	Args: cobra.NoArgs,
	Run:  runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaDefaults, "defaults", "", "Print defaults instead: yaml or toml")
}

func runSchema(_ *cobra.Command, _ []string) {
	var (
		out []byte
		err error
	)
	switch flagSchemaDefaults {
	case "":
		out, err = config.Schema()
	case "yaml":
		out, err = config.Marshal(config.DefaultJezzballConfig(), config.FormatYAML)
	case "toml":
		out, err = config.Marshal(config.DefaultJezzballConfig(), config.FormatTOML)
	default:
		fail("unknown format %q", flagSchemaDefaults)
	}
	if err != nil {
		fail("%v", err)
	}

	os.Stdout.Write(out) //nolint:errcheck // stdout
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Println()
	}
}
