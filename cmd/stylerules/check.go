package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bundlekit/stylerules/pkg/config"
	"github.com/bundlekit/stylerules/pkg/diagnostics"
	"github.com/bundlekit/stylerules/pkg/errors"
	"github.com/bundlekit/stylerules/pkg/rules"
	"github.com/bundlekit/stylerules/pkg/transform"
	"github.com/bundlekit/stylerules/pkg/types"
)

var (
	acceptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	rejectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newCheckCmd() *cobra.Command {
	var issuer string

	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Resolve one candidate file against the configured policy",
		Long: `check builds the rule set for the configured build context and resolves a
single candidate (the imported path plus the optional importing file).
Exits non-zero when the import violates the stylesheet policy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, bctx, err := buildRuleSet(cmd)
			if err != nil {
				return err
			}

			candidate := types.Candidate{Path: args[0], Issuer: issuer}
			rule, ok := rules.NewMatcher().Resolve(rs, candidate)
			if !ok {
				cmd.Println(mutedStyle.Render("unhandled: no rule claims this file, default pipeline applies"))
				return nil
			}

			if reject, isReject := rule.Action.(types.Reject); isReject {
				entry, _ := bctx.Target.EntryFile()
				message := diagnostics.Describe(reject.Diagnostic, diagnostics.Details{
					Path:      candidate.Path,
					Issuer:    candidate.Issuer,
					EntryFile: entry,
				})
				cmd.PrintErrln(rejectStyle.Render(fmt.Sprintf("rejected by %s", rule.Name)))
				cmd.PrintErrln(message)
				return errors.New(errors.ErrPolicyViolation, "stylesheet policy violated").
					WithDetail("path", candidate.Path).
					WithDetail("rule", rule.Name)
			}

			cmd.Println(acceptStyle.Render(string(rule.Action.Kind())))
			cmd.Println(mutedStyle.Render(fmt.Sprintf("rule %s (priority %d, sideEffects=%t)",
				rule.Name, rule.Priority, rule.SideEffects)))
			return nil
		},
	}

	cmd.Flags().StringVar(&issuer, "issuer", "", "Path of the file containing the import statement")

	return cmd
}

// buildRuleSet loads configuration and derives the ordered policy
func buildRuleSet(cmd *cobra.Command) (*rules.RuleSet, *types.BuildContext, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	bctx, err := cfg.BuildContext()
	if err != nil {
		return nil, nil, err
	}
	builder := rules.NewBuilder(transform.Static(), cfg.BuilderOptions())
	rs, err := builder.Build(cmd.Context(), bctx)
	if err != nil {
		return nil, nil, err
	}
	return rs, bctx, nil
}
