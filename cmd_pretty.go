package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heathj/htmlassert/definition"
	"github.com/heathj/htmlassert/matcher"
	"github.com/heathj/htmlassert/parser"
)

func newPrettyCmd(a *app) *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "pretty [DOCUMENT]",
		Short: "Print a document as indented markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			root, err := a.parseDocument(cmd, path)
			if err != nil {
				return err
			}
			if dump {
				fmt.Fprintln(cmd.OutOrStdout(), root.String())
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), parser.Pretty(root))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "print the parsed node tree instead of markup")
	return cmd
}

func newSpecCmd(a *app) *cobra.Command {
	var flat bool
	cmd := &cobra.Command{
		Use:   "spec SPEC",
		Short: "Print a spec file as indented markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadSpec(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !flat {
				fmt.Fprint(out, definition.Pretty(def))
				return nil
			}
			for i, d := range matcher.Flatten(def) {
				fmt.Fprintf(out, "%d. %s (at %s)\n", i+1, d, d.Path())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "list the definitions in the order they must be matched")
	return cmd
}
