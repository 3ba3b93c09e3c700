package internalcheck

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	modulePath = "github.com/derolang/dero-go"
	libdero    = modulePath + "/cmd/libdero"
)

func loadPackages(t *testing.T, patterns ...string) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatal("packages contain errors")
	}
	return pkgs
}

// sourceFiles returns every Go file of pkg, including files excluded by build
// constraints in the current environment.
func sourceFiles(pkg *packages.Package) []string {
	files := append([]string{}, pkg.GoFiles...)
	for _, f := range pkg.IgnoredFiles {
		if filepath.Ext(f) == ".go" {
			files = append(files, f)
		}
	}
	return files
}

func parseFile(t *testing.T, fset *token.FileSet, path string, mode parser.Mode) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(fset, path, nil, mode)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return f
}

func packageDir(t *testing.T, pkg *packages.Package) string {
	t.Helper()
	files := sourceFiles(pkg)
	if len(files) == 0 {
		t.Fatalf("package %s has no files", pkg.PkgPath)
	}
	return filepath.Dir(files[0])
}
