package main

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bundlekit/stylerules/pkg/config"
	"github.com/bundlekit/stylerules/pkg/errors"
)

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print the default configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := toml.Marshal(config.Default())
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "marshaling default config")
			}
			cmd.Print(string(out))
			return nil
		},
	}
}
