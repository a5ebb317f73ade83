package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/htmlassert/matcher"
	"github.com/heathj/htmlassert/parser"
)

func newMatchCmd(a *app) *cobra.Command {
	var specPath string
	var noPrune bool
	cmd := &cobra.Command{
		Use:   "match --spec SPEC [DOCUMENT]",
		Short: "Match a document against a spec file",
		Long: "Match a document against a YAML spec file and print the report.\n\n" +
			"Exits 0 when the document matches, 1 when it does not and 2 on errors.\n" +
			"DOCUMENT defaults to standard input.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath, err := documentArg(specPath, args)
			if err != nil {
				return err
			}
			spec, err := loadSpec(cmd, specPath)
			if err != nil {
				return err
			}
			src, err := readSource(cmd, docPath)
			if err != nil {
				return err
			}

			result, err := a.matcher(noPrune).Match(spec, src)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result.String())
			if result.Failed() {
				return errNoMatch
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "YAML spec file (- for stdin)")
	cmd.Flags().BoolVar(&noPrune, "no-prune", false, "scan the whole document instead of pruning it first")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}

func newPruneCmd(a *app) *cobra.Command {
	var specPath string
	var diff bool
	cmd := &cobra.Command{
		Use:   "prune --spec SPEC [DOCUMENT]",
		Short: "Print the document with elements no definition can match removed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath, err := documentArg(specPath, args)
			if err != nil {
				return err
			}
			spec, err := loadSpec(cmd, specPath)
			if err != nil {
				return err
			}
			root, err := a.parseDocument(cmd, docPath)
			if err != nil {
				return err
			}

			before := parser.Pretty(root)
			defs := matcher.Flatten(spec)
			live := matcher.Prune(root, defs)
			after := parser.Pretty(root)
			a.log.WithFields(logrus.Fields{
				"component":   "prune",
				"definitions": len(defs),
				"live":        live,
			}).Debug("pruned document")

			if diff {
				fmt.Fprint(cmd.OutOrStdout(), lineDiff(before, after))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), after)
			return nil
		},
	}
	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "YAML spec file (- for stdin)")
	cmd.Flags().BoolVar(&diff, "diff", false, "print a line diff against the unpruned document")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}
