/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"

	"github.com/suparena/polyregistry/manifest"
)

var (
	manifestPath = flag.String("manifest", "polyregistry.yaml", "Path to the registration manifest")
	outputPath   = flag.String("out", "", "Output file for generated code (default stdout)")
	packageName  = flag.String("package", "registrations", "Package name for generated code")
	verifyOnly   = flag.Bool("verify", false, "Only validate the manifest, generate nothing")
)

const fileTemplate = `// Code generated by polyreg from {{.ManifestPath}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/suparena/polyregistry/datastore"
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)
{{range .Families}}
// Register{{.FuncName}} installs every declared {{.Name}} kind into the
// given registry. Call it once at process startup.
func Register{{.FuncName}}(kinds *datastore.KindRegistry) error {
{{- range .Types}}
	if err := datastore.RegisterKind[{{.GoType}}](kinds, {{printf "%q" .Name}}); err != nil {
		return err
	}
{{- end}}
	return nil
}
{{end}}`

type templateData struct {
	ManifestPath string
	Package      string
	Imports      []string
	Families     []templateFamily
}

type templateFamily struct {
	Name     string
	FuncName string
	Types    []templateType
}

type templateType struct {
	Name   string
	GoType string
}

// Generate renders the registration source for every family in the
// manifest and returns gofmt-formatted Go code.
func Generate(m *manifest.Manifest, manifestPath, pkg string) ([]byte, error) {
	data := templateData{
		ManifestPath: manifestPath,
		Package:      pkg,
		Imports:      m.Imports,
	}
	for _, f := range m.Families {
		tf := templateFamily{
			Name:     f.Name,
			FuncName: exportName(f.Name),
		}
		for _, t := range f.Types {
			goType := t.GoType
			if goType == "" {
				goType = t.Name
			}
			tf.Types = append(tf.Types, templateType{Name: t.Name, GoType: goType})
		}
		data.Families = append(data.Families, tf)
	}

	tmpl, err := template.New("registrations").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render registrations: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}
	return src, nil
}

// Main is the entry point used by the polyreg command. Flags are parsed by
// the caller.
func Main() {
	m, err := manifest.Load(*manifestPath)
	if err != nil {
		log.Fatalf("polyreg: %v", err)
	}

	if *verifyOnly {
		for _, f := range m.Families {
			fmt.Printf("family %s: %d types\n", f.Name, len(f.Types))
		}
		return
	}

	src, err := Generate(m, *manifestPath, *packageName)
	if err != nil {
		log.Fatalf("polyreg: %v", err)
	}

	if *outputPath == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outputPath, src, 0o644); err != nil {
		log.Fatalf("polyreg: failed to write %s: %v", *outputPath, err)
	}
}

// exportName upper-cases the first byte so family names become exported
// function suffixes.
func exportName(name string) string {
	if name == "" {
		return name
	}
	b := []byte(name)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
