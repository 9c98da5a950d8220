package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yigit/uniadmin/internal/app/catalog"
	"github.com/yigit/uniadmin/internal/app/services"
	"github.com/yigit/uniadmin/internal/bootstrap"
	"github.com/yigit/uniadmin/internal/db"
)

var execTemplate string

var execCmd = &cobra.Command{
	Use:   "exec [sql]",
	Short: "Execute a statement and print the outcome",
	Long: `Executes one SQL statement exactly as given. SELECT statements print
their rows as a table; anything else is committed and reports rows affected.`,
	Example: `  uniadmin exec "SELECT StudentID FROM STUDENT"
  uniadmin exec --template "9. Student Count per Department"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().StringVarP(&execTemplate, "template", "t", "", "run a catalog template by label instead of an argument")
}

func runExec(cmd *cobra.Command, args []string) error {
	statement, err := resolveStatement(args, execTemplate)
	if err != nil {
		return err
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	connector, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer connector.Close()

	outcome := services.NewDispatcher(connector, lgr).Dispatch(cmd.Context(), statement)
	fmt.Fprintln(cmd.OutOrStdout(), renderOutcome(outcome))

	if outcome.Failed {
		return errors.New(outcome.Message)
	}
	return nil
}

// resolveStatement picks the statement from the argument or a template label
func resolveStatement(args []string, template string) (string, error) {
	switch {
	case template != "" && len(args) > 0:
		return "", errors.New("pass either a statement or --template, not both")
	case template != "":
		sql, ok := catalog.Lookup(template)
		if !ok {
			return "", fmt.Errorf("unknown template %q", template)
		}
		return sql, nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", errors.New("a statement is required")
	}
}

func renderOutcome(o *services.Outcome) string {
	var b strings.Builder
	if o.Failed {
		b.WriteString(errorStyle.Render(o.Message))
		return b.String()
	}

	if o.Result != nil {
		b.WriteString(renderTable(o.Result))
		b.WriteString("\n")
	}
	b.WriteString(successStyle.Render(o.Message))
	return b.String()
}
