package main

import (
	"advent/internal/solution"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func yearsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "Lists the supported years and their days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printYears(cmd.OutOrStdout(), solution.Default())
		},
	}
}

func printYears(w io.Writer, registry *solution.Registry) error {
	for _, year := range registry.Years() {
		defs, err := registry.ForYear(year)
		if err != nil {
			return err
		}

		days := make([]string, 0, len(defs))
		for _, d := range defs {
			days = append(days, fmt.Sprintf("%02d", d.Day))
		}
		if _, err := fmt.Fprintf(w, "%d: %s\n", year, strings.Join(days, " ")); err != nil {
			return fmt.Errorf("could not print years: %w", err)
		}
	}

	return nil
}
