// Package crawler resolves the set of source paths to analyze and parses
// them into syntax trees.
package crawler

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pystats/internal/syntax"
)

const (
	defaultExtension         = ".py"
	localConfigurationSuffix = ".pyre_configuration.local"
)

// FindPaths resolves the analysis roots. With no filters, the base directory
// itself is the single root; otherwise each filter is joined onto the base in
// input order, without deduplication. The base directory is the working
// directory, or localConfiguration with its configuration suffix removed.
// Pure string manipulation: the results are not checked for existence.
func FindPaths(localConfiguration string, filters []string) ([]string, error) {
	var base string
	if localConfiguration != "" {
		base = strings.ReplaceAll(localConfiguration, localConfigurationSuffix, "")
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		base = cwd
	}

	if len(filters) == 0 {
		return []string{base}, nil
	}
	paths := make([]string, 0, len(filters))
	for _, filter := range filters {
		paths = append(paths, filepath.Join(base, filter))
	}
	return paths, nil
}

// Crawler discovers and parses source files.
type Crawler struct {
	parser    *syntax.Parser
	extension string
}

// NewCrawler creates a crawler that parses files with the given extension
// (".py" when empty).
func NewCrawler(parser *syntax.Parser, extension string) *Crawler {
	if extension == "" {
		extension = defaultExtension
	}
	return &Crawler{parser: parser, extension: extension}
}

// ParsePaths maps each path to its parsed trees: directories are searched
// recursively in traversal order, single files are parsed directly. Any read
// or parse failure aborts the whole batch.
func (c *Crawler) ParsePaths(paths []string) ([]*syntax.Tree, error) {
	var trees []*syntax.Tree
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			parsed, err := c.parseDirectory(path)
			if err != nil {
				return nil, err
			}
			trees = append(trees, parsed...)
		} else {
			tree, err := c.parser.ParseFile(path)
			if err != nil {
				return nil, err
			}
			trees = append(trees, tree)
		}
	}
	return trees, nil
}

func (c *Crawler) parseDirectory(dir string) ([]*syntax.Tree, error) {
	var trees []*syntax.Tree
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !c.wantFile(d.Name()) {
			return nil
		}
		tree, err := c.parser.ParseFile(path)
		if err != nil {
			return err
		}
		trees = append(trees, tree)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trees, nil
}

// wantFile keeps files with the source extension, skipping dunder and hidden
// names. The filter applies to file names only, not directories.
func (c *Crawler) wantFile(name string) bool {
	return strings.HasSuffix(name, c.extension) &&
		!strings.HasPrefix(name, "__") &&
		!strings.HasPrefix(name, ".")
}
