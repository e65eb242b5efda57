package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"status-report-server/internal/infra/auth"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/catalog"
	"status-report-server/internal/status_report/formula"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errLintFailed = errors.New("catalog has failing formulas")

func bindingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bindings",
		Short: "List the names a formula can read and write",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBindings(cmd.OutOrStdout(), viper.GetBool("json"))
		},
	}
}

func printBindings(out io.Writer, asJSON bool) error {
	if asJSON {
		return printJSON(out, map[string]any{
			"version":  formula.BindingsVersion,
			"bindings": formula.Table,
		})
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetTitle(fmt.Sprintf("Formula bindings v%d", formula.BindingsVersion))
	tw.AppendHeader(table.Row{"Name", "Type", "Writable", "Description"})
	for _, b := range formula.Table {
		tw.AppendRow(table.Row{b.Name, b.Type, b.Writable, b.Description})
	}
	tw.Render()
	return nil
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "catalog", Short: "Inspect indicator catalogs"}
	cmd.AddCommand(&cobra.Command{
		Use:   "lint [file]",
		Short: "Check every formula of a catalog, the built-in one when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return lintCatalog(cmd.Context(), cmd.OutOrStdout(), path)
		},
	})
	return cmd
}

func lintCatalog(ctx context.Context, out io.Writer, path string) error {
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}

	issues := c.Lint(ctx, formula.NewCompiler(nil))
	failed := make(map[string]error, len(issues))
	for _, issue := range issues {
		failed[issue.Indicator] = issue.Err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Sequence", "Indicator", "Kind", "Result"})
	for _, entry := range c.Entries {
		result := "ok"
		if err, ok := failed[entry.Name]; ok {
			result = err.Error()
		}
		tw.AppendRow(table.Row{entry.Sequence, entry.Name, entry.ValueKind, result})
	}
	tw.Render()

	if len(issues) > 0 {
		return fmt.Errorf("%w: %d of %d", errLintFailed, len(issues), len(c.Entries))
	}
	return nil
}

func formulaCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "formula", Short: "Work with indicator formulas"}

	var file string
	validate := &cobra.Command{
		Use:   "validate [source]",
		Short: "Compile and run a formula against an empty project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source string
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				source = string(data)
			case len(args) == 1:
				source = args[0]
			default:
				return errors.New("pass a formula or --file")
			}
			return validateFormula(cmd.Context(), cmd.OutOrStdout(), source)
		},
	}
	validate.Flags().StringVarP(&file, "file", "f", "", "read the formula from a file")
	cmd.AddCommand(validate)
	return cmd
}

func validateFormula(ctx context.Context, out io.Writer, source string) error {
	outcome, err := formula.NewCompiler(nil).Evaluate(ctx, source, formula.Bindings{Date: time.Now().UTC()})
	if err != nil {
		var ferr *formula.Error
		if errors.As(err, &ferr) {
			fmt.Fprintf(out, "line %d, column %d: %s\n", ferr.Line, ferr.Column, ferr.Message)
		}
		return err
	}

	fmt.Fprintf(out, "ok: value=%v color=%s\n", outcome.Value, outcome.Color)
	return nil
}

func tokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with the configured secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			return issueToken(cmd.OutOrStdout(), viper.GetString("auth.jwt_secret"), viper.GetString("auth.issuer"), subject, role, ttl)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "actor id")
	cmd.Flags().StringVar(&role, "role", string(shareddomain.RoleUser), "actor role (user, system)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	viper.SetDefault("auth.issuer", "status-report-server")
	return cmd
}

func issueToken(out io.Writer, secret, issuer, subject, role string, ttl time.Duration) error {
	parsed, err := shareddomain.ParseRole(role)
	if err != nil {
		return err
	}

	authenticator, err := auth.NewJWTAuthenticator(secret, issuer)
	if err != nil {
		return err
	}

	token, err := authenticator.Issue(shareddomain.Actor{ID: shareddomain.ID(subject), Role: parsed}, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, token)
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
