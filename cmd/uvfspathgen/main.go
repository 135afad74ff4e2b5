//
//  Copyright 2026 The uvfs authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Command uvfspathgen is a go:generate tool that validates every
// pathlit.Literal("...") call site in a package against the same rules as
// uvfs.New, failing the generate step at the first invalid literal, and
// emits a "<file>_pathlit.go" sibling defining a package-level uvfs.Path
// constant for each call site. It is the build-time enforcement mechanism
// for package pathlit, the same role //go:generate stringer plays for this
// repository's enum String() methods.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/unionvfs/uvfs"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: uvfspathgen [-dir package-dir]\n")
		flag.PrintDefaults()
	}

	dir := flag.String("dir", ".", "directory to scan for pathlit.Literal call sites")
	flag.Parse()

	if err := run(*dir); err != nil {
		fmt.Fprintln(os.Stderr, "uvfspathgen:", err)
		os.Exit(1)
	}
}

// literalSite is one pathlit.Literal("...") call found in a source file.
type literalSite struct {
	constName string
	value     string // the already-validated canonical path text
	pos       token.Position
}

func run(dir string) error {
	fset := token.NewFileSet()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, de := range entries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_pathlit.go") {
			continue
		}

		full := filepath.Join(dir, name)

		f, err := parser.ParseFile(fset, full, nil, 0)
		if err != nil {
			return fmt.Errorf("parse %s: %w", full, err)
		}

		sites, err := scanFile(fset, f)
		if err != nil {
			return err
		}

		if len(sites) == 0 {
			continue
		}

		out := strings.TrimSuffix(full, ".go") + "_pathlit.go"
		if err := writeGenerated(out, f.Name.Name, sites); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
	}

	return nil
}

// scanFile walks f's AST for pathlit.Literal(...) call expressions, rejects
// any whose sole argument is not a single string literal, and validates the
// literal's text with uvfs.New, reporting the file:line:col of the first
// failure.
func scanFile(fset *token.FileSet, f *ast.File) ([]literalSite, error) {
	var (
		sites []literalSite
		count int
	)

	var walkErr error

	ast.Inspect(f, func(n ast.Node) bool {
		if walkErr != nil {
			return false
		}

		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Literal" {
			return true
		}

		pkgIdent, ok := sel.X.(*ast.Ident)
		if !ok || pkgIdent.Name != "pathlit" {
			return true
		}

		pos := fset.Position(call.Pos())

		if len(call.Args) != 1 {
			walkErr = fmt.Errorf("%s: pathlit.Literal requires exactly one argument", pos)
			return false
		}

		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			walkErr = fmt.Errorf("%s: pathlit.Literal argument must be a single string literal", pos)
			return false
		}

		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			walkErr = fmt.Errorf("%s: %w", pos, err)
			return false
		}

		canon, err := uvfs.New(s)
		if err != nil {
			walkErr = fmt.Errorf("%s: invalid path literal %q: %w", pos, s, err)
			return false
		}

		count++
		sites = append(sites, literalSite{
			constName: fmt.Sprintf("PathLit%d", count),
			value:     string(canon),
			pos:       pos,
		})

		return true
	})

	if walkErr != nil {
		return nil, walkErr
	}

	return sites, nil
}

func writeGenerated(path, pkgName string, sites []literalSite) error {
	sort.Slice(sites, func(i, j int) bool { return sites[i].constName < sites[j].constName })

	var sb strings.Builder

	fmt.Fprintf(&sb, "// Code generated by \"uvfspathgen\"; DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkgName)
	fmt.Fprintf(&sb, "import \"github.com/unionvfs/uvfs\"\n\n")
	fmt.Fprintf(&sb, "const (\n")

	for _, s := range sites {
		fmt.Fprintf(&sb, "\t// %s is the build-time-verified path %q (from %s).\n", s.constName, s.value, s.pos)
		fmt.Fprintf(&sb, "\t%s uvfs.Path = %q\n", s.constName, s.value)
	}

	fmt.Fprintf(&sb, ")\n")

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
