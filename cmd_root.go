package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/htmlassert/definition"
	"github.com/heathj/htmlassert/matcher"
	"github.com/heathj/htmlassert/parser"
	"github.com/heathj/htmlassert/parser/dom"
)

// app holds the persistent flags and what setup derives from them.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	mode       string

	config Config
	log    *logrus.Entry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   appName,
		Short: "Check that HTML documents contain the expected elements, in order",
		Long: appName + " matches a document against a tree of element definitions.\n\n" +
			"Matching is partial: the document may contain any other elements, but every\n" +
			"definition must be satisfied by a distinct element in document order.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "",
		"config file (default: $"+envConfig+" or ~/.config/"+appName+"/config.yaml)")
	f.StringVar(&a.logLevel, "log-level", "", "log level: error, warn, info, debug or trace")
	f.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	f.StringVar(&a.mode, "mode", "", "parse mode: auto, html or xml")

	root.AddCommand(newMatchCmd(a), newPruneCmd(a), newPrettyCmd(a), newSpecCmd(a))
	return root
}

// setup merges the config file with the flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, explicit, err := resolveConfigPath(a.configPath)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if a.mode != "" {
		cfg.Mode = a.mode
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.config = cfg
	a.log = log
	log.WithField("config", path).Debug("configured")
	return nil
}

func (a *app) parser() *parser.Parser {
	mode, _ := parser.ParseMode(a.config.Mode)
	return parser.NewParser(
		parser.WithMode(mode),
		parser.WithLogger(a.log.WithField("component", "parser")),
	)
}

func (a *app) matcher(noPrune bool) *matcher.Matcher {
	opts := []matcher.Option{
		matcher.WithLogger(a.log),
		matcher.WithParser(a.parser()),
	}
	if noPrune || !a.config.pruning() {
		opts = append(opts, matcher.WithoutPruning())
	}
	return matcher.New(opts...)
}

// open returns the named input; "" and "-" are standard input.
func open(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	return f, nil
}

func readSource(cmd *cobra.Command, path string) (string, error) {
	r, err := open(cmd, path)
	if err != nil {
		return "", err
	}
	defer r.Close()
	src, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "read document")
	}
	return string(src), nil
}

func (a *app) parseDocument(cmd *cobra.Command, path string) (*dom.Node, error) {
	src, err := readSource(cmd, path)
	if err != nil {
		return nil, err
	}
	root, err := a.parser().ParseString(src)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", displayPath(path))
	}
	return root, nil
}

func loadSpec(cmd *cobra.Command, path string) (*definition.ElementDefinition, error) {
	r, err := open(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	def, err := definition.Load(r)
	if err != nil {
		return nil, errors.Wrapf(err, "load spec %s", displayPath(path))
	}
	return def, nil
}

func displayPath(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

// documentArg returns the optional document argument and refuses to read
// both the spec and the document from standard input.
func documentArg(specPath string, args []string) (string, error) {
	doc := "-"
	if len(args) > 0 {
		doc = args[0]
	}
	if displayPath(specPath) == "<stdin>" && displayPath(doc) == "<stdin>" {
		return "", errors.New("spec and document cannot both be read from stdin")
	}
	return doc, nil
}
