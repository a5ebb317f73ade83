package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmlassert/parser/dom"
)

// Mode selects how source text is turned into a document.
type Mode uint

const (
	// ModeAuto parses as XML when the source opens with an XML declaration
	// and as HTML otherwise.
	ModeAuto Mode = iota
	// ModeHTML runs the HTML5 tree construction algorithm. It accepts any
	// input and implies html, head and body elements.
	ModeHTML
	// ModeXML requires well-formed XML.
	ModeXML
)

func (m Mode) String() string {
	switch m {
	case ModeHTML:
		return "html"
	case ModeXML:
		return "xml"
	}
	return "auto"
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "html":
		return ModeHTML, nil
	case "xml":
		return ModeXML, nil
	}
	return ModeAuto, errors.Errorf("unknown parse mode %q", s)
}

type Option func(*Parser)

func WithMode(m Mode) Option {
	return func(p *Parser) {
		p.mode = m
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser turns HTML or XML source into a dom tree. A Parser holds no
// per-document state and may be shared.
type Parser struct {
	mode Mode
	log  *logrus.Entry
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		mode: ModeAuto,
		log:  discardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) Mode() Mode {
	return p.mode
}

// Parse reads all of r and returns the document root.
func (p *Parser) Parse(r io.Reader) (*dom.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read source")
	}

	mode := p.mode
	if mode == ModeAuto {
		mode = detectMode(src)
	}
	log := p.log.WithFields(logrus.Fields{"mode": mode, "bytes": len(src)})
	log.Debug("parsing document")

	builder := NewDOMBuilder()
	switch mode {
	case ModeXML:
		err = builder.BuildXML(bytes.NewReader(src))
	default:
		err = builder.BuildHTML(bytes.NewReader(src))
	}
	if err != nil {
		log.WithError(err).Debug("parse failed")
		return nil, err
	}
	return builder.Document(), nil
}

func (p *Parser) ParseString(src string) (*dom.Node, error) {
	return p.Parse(strings.NewReader(src))
}

// Parse parses src with a default Parser.
func Parse(src string) (*dom.Node, error) {
	return NewParser().ParseString(src)
}

func detectMode(src []byte) Mode {
	trimmed := bytes.TrimLeft(src, " \t\r\n\ufeff")
	if bytes.HasPrefix(trimmed, []byte("<?xml")) {
		return ModeXML
	}
	return ModeHTML
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
