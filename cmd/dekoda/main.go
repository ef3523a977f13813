package main

import (
	"flag"
	"fmt"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	gen "github.com/reoring/dekoda/internal/gen"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "derive":
		deriveCmd(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `dekoda CLI

Usage:
  dekoda derive -type T1[,T2,...] [-pkgdir DIR] [-o FILE]

derive inspects the named struct types and writes a Go file declaring a
<Type>Decoder constructor for each, built from the dsl and honoring json
tags. Field types without a direct dsl constructor fall back to Unmarshal.

For use with go:generate:
  //go:generate go tool dekoda derive -type AppConfig`)
}

func deriveCmd(args []string) {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	var typesCSV string
	var pkgdir string
	var out string
	fs.StringVar(&typesCSV, "type", "", "comma-separated struct type names to derive decoders for")
	fs.StringVar(&pkgdir, "pkgdir", ".", "directory of the package that defines the types")
	fs.StringVar(&out, "o", "", "output filename (default <pkgdir>/dekoda_gen.go)")
	_ = fs.Parse(args)
	if typesCSV == "" {
		fs.Usage()
		os.Exit(2)
	}
	names := splitCSV(typesCSV)

	pkg, err := loadPackage(pkgdir)
	if err != nil {
		fatalf("load package: %v", err)
	}

	file := gen.File{Package: pkg.Name}
	importSet := map[string]bool{}
	for _, name := range names {
		st, err := lookupStruct(pkg, name)
		if err != nil {
			fatalf("%v", err)
		}
		an, err := gen.AnalyzeStruct(name, st, pkg.Types)
		if err != nil {
			fatalf("analyze %s: %v", name, err)
		}
		file.Types = append(file.Types, an.Def)
		for _, p := range an.Imports {
			importSet[p] = true
		}
	}
	for p := range importSet {
		file.Imports = append(file.Imports, p)
	}
	sort.Strings(file.Imports)

	code, err := gen.RenderFile(file)
	if err != nil {
		fatalf("generate: %v", err)
	}

	if out == "" {
		out = filepath.Join(pkgdir, "dekoda_gen.go")
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
	fmt.Fprintf(os.Stderr, "generated %s\n", out)
}

func loadPackage(dir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("package errors: %v", pkg.Errors)
	}
	return pkg, nil
}

func lookupStruct(pkg *packages.Package, name string) (*types.Struct, error) {
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("type %s not found in package %s", name, pkg.Name)
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s is not a struct type", name)
	}
	return st, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
