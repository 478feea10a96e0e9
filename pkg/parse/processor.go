package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kbirk/cnd/internal/util"
	"github.com/kbirk/cnd/pkg/schema"
)

// ParseFile parses a single CND file.
func ParseFile(path string) (*schema.Schema, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseNamed(string(bs), path)
}

// ParseDir finds every .cnd file under inputDir, parses each one, and merges
// the results into a single schema. Files are processed in sorted path order
// so the merged node type order is deterministic. A node type defined in more
// than one file, or a namespace prefix bound to different URIs in different
// files, fails the whole parse.
func ParseDir(inputDir string) (*schema.Schema, error) {
	if err := ensureIsDir(inputDir); err != nil {
		return nil, err
	}

	var paths []string
	if err := findCNDFiles(&paths, inputDir); err != nil {
		return nil, err
	}
	sort.Strings(paths)

	merged := schema.NewSchema()
	nodeTypeSource := map[string]string{}
	namespaceSource := map[string]string{}

	for _, path := range paths {
		s, err := ParseFile(path)
		if err != nil {
			return nil, err
		}

		for prefix, uri := range s.Namespaces {
			if existing, ok := merged.Namespaces[prefix]; ok && existing != uri {
				return nil, &ParseError{
					Message: fmt.Sprintf(
						"namespace prefix `%s` bound to `%s` in %s and `%s` in %s",
						prefix, existing, namespaceSource[prefix], uri, path),
					Filename: path,
				}
			}
			namespaceSource[prefix] = path
		}
		merged.Namespaces = util.MergeMap(merged.Namespaces, s.Namespaces)

		for _, nt := range s.NodeTypes {
			if other, ok := nodeTypeSource[nt.Name]; ok {
				return nil, &ParseError{
					Message:  fmt.Sprintf("node type `%s` defined multiple times (%s, %s)", nt.Name, other, path),
					Filename: path,
				}
			}
			nodeTypeSource[nt.Name] = path
			merged.NodeTypes = append(merged.NodeTypes, nt)
		}
	}

	return merged, nil
}

func findCNDFiles(files *[]string, path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fullPath := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			err := findCNDFiles(files, fullPath)
			if err != nil {
				return err
			}
		} else if strings.HasSuffix(entry.Name(), ".cnd") {
			*files = append(*files, fullPath)
		}
	}

	return nil
}

func ensureIsDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	return nil
}
