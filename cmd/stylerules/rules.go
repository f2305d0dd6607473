package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bundlekit/stylerules/pkg/errors"
)

// ruleListing is the serialized shape of one rule for the yaml format
type ruleListing struct {
	Priority    int    `yaml:"priority"`
	Name        string `yaml:"name"`
	Action      string `yaml:"action"`
	SideEffects bool   `yaml:"sideEffects"`
	Pattern     string `yaml:"pattern"`
}

type extractionListing struct {
	Filename            string `yaml:"filename"`
	ChunkFilename       string `yaml:"chunkFilename"`
	IgnoreOrderWarnings bool   `yaml:"ignoreOrderWarnings"`
}

type ruleSetListing struct {
	Rules      []ruleListing      `yaml:"rules"`
	Extraction *extractionListing `yaml:"extraction,omitempty"`
}

func newRulesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the ordered rule list for the configured build context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, _, err := buildRuleSet(cmd)
			if err != nil {
				return err
			}

			listing := ruleSetListing{}
			for _, r := range rs.Rules() {
				listing.Rules = append(listing.Rules, ruleListing{
					Priority:    r.Priority,
					Name:        r.Name,
					Action:      string(r.Action.Kind()),
					SideEffects: r.SideEffects,
					Pattern:     r.Pattern.Describe(),
				})
			}
			if directive, ok := rs.Extraction(); ok {
				listing.Extraction = &extractionListing{
					Filename:            directive.FilenameTemplate,
					ChunkFilename:       directive.ChunkFilenameTemplate,
					IgnoreOrderWarnings: directive.IgnoreOrderWarnings,
				}
			}

			switch format {
			case "text":
				for _, r := range listing.Rules {
					cmd.Println(fmt.Sprintf("%4d  %-28s %-16s sideEffects=%-5t  %s",
						r.Priority, r.Name, r.Action, r.SideEffects, r.Pattern))
				}
				if listing.Extraction != nil {
					cmd.Println(fmt.Sprintf("      extraction: %s (chunks %s, ignoreOrderWarnings=%t)",
						listing.Extraction.Filename,
						listing.Extraction.ChunkFilename,
						listing.Extraction.IgnoreOrderWarnings))
				}
				return nil
			case "yaml":
				out, err := yaml.Marshal(listing)
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "marshaling rule listing")
				}
				cmd.Print(string(out))
				return nil
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q (want text or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")

	return cmd
}
