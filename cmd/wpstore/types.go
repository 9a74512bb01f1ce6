/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/suparena/wpstore"
	"github.com/suparena/wpstore/registry"
	_ "github.com/suparena/wpstore/wp"
)

type typeEntry struct {
	Identifier string `yaml:"identifier"`
	Kind       string `yaml:"kind"`
	GoType     string `yaml:"go_type"`
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered tagged types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := registry.Default.Entries()
		out := make([]typeEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, typeEntry{
				Identifier: e.Identifier,
				Kind:       e.Kind.String(),
				GoType:     e.Type.String(),
			})
		}
		return printYAML(cmd, out)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wpstore version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printYAML(cmd, wpstore.GetVersionInfo())
	},
}
