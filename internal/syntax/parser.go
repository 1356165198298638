package syntax

import (
	"context"
	"errors"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ParseError reports syntactically invalid source text.
type ParseError struct {
	Path string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "source contains syntax errors"
	}
	return fmt.Sprintf("source contains syntax errors: %s", e.Path)
}

// Tree is one immutable parsed source file. It is read-only after parsing;
// collectors never mutate it.
type Tree struct {
	tree *sitter.Tree
	src  []byte
}

// Source returns the raw text the tree was parsed from.
func (t *Tree) Source() []byte { return t.src }

// Parser turns Python source text into a traversable syntax tree.
type Parser struct {
	lang *sitter.Language
}

// NewParser creates a parser for Python source.
func NewParser() *Parser {
	return &Parser{lang: python.GetLanguage()}
}

// Parse builds the syntax tree for src. Malformed source yields a *ParseError.
func (p *Parser) Parse(src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(p.lang)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	if tree.RootNode().HasError() {
		return nil, &ParseError{}
	}
	return &Tree{tree: tree, src: src}, nil
}

// ParseFile reads path and parses its full contents.
func (p *Parser) ParseFile(path string) (*Tree, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := p.Parse(src)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return tree, nil
}
