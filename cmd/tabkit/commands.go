package main

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/tabkit/internal/app"
)

func (c *cli) newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [file]",
		Short: "Render a table in another format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runner(cmd).Convert(commandContext(cmd), inputArg(args), outputFlag(cmd))
		},
	}
}

func (c *cli) newFilterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter [file] --where column=value ...",
		Short: "Keep the rows where every column equals its value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clauses, err := whereFlag(cmd)
			if err != nil {
				return err
			}

			return c.runner(cmd).Filter(commandContext(cmd), inputArg(args), outputFlag(cmd), clauses)
		},
	}

	addWhereFlag(cmd, "equality condition; repeat to require several")

	return cmd
}

func (c *cli) newFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [file] --where column=value",
		Short: "Print the first row where the column equals the value",
		Long: `Print the first row where the column equals the value.

Exits with a non-zero status and a "no record" message when no row matches.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clauses, err := whereFlag(cmd)
			if err != nil {
				return err
			}

			return c.runner(cmd).Find(commandContext(cmd), inputArg(args), outputFlag(cmd), clauses)
		},
	}

	addWhereFlag(cmd, "equality condition")

	return cmd
}

func (c *cli) newMappingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping [file.yaml]",
		Short: "Render a flat YAML mapping as a key/value table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sorted, _ := cmd.Flags().GetBool("sort")

			return c.runner(cmd).Mapping(commandContext(cmd), inputArg(args), outputFlag(cmd), sorted)
		},
	}

	flags := cmd.Flags()
	flags.String("key-name", "", "name of the key column (default 'Key')")
	flags.String("value-name", "", "name of the value column (default 'Value')")
	flags.Bool("sort", false, "order entries by key instead of document order")

	return cmd
}

func addWhereFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringArrayP("where", "w", nil, usage)
}

func whereFlag(cmd *cobra.Command) ([]app.Clause, error) {
	raw, _ := cmd.Flags().GetStringArray("where")

	clauses := make([]app.Clause, len(raw))
	for i, s := range raw {
		clause, err := app.ParseWhere(s)
		if err != nil {
			return nil, err
		}

		clauses[i] = clause
	}

	return clauses, nil
}
