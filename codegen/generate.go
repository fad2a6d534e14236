// Command codegen reads tokenkinds.yaml, validates it against
// tokenkinds.schema.json, and emits the tokenkind package's generated
// kind->event lookup table. It is a one-shot source generator, not a
// runtime dependency of lexcompat: run it by hand from the module root
// (`go run ./codegen`, whose flag defaults name the repository paths)
// after editing tokenkinds.yaml, check the regenerated file in, and move on.
//
// The template-and-validate approach follows a generic text/template plus
// JSON Schema validation pipeline, adapted here to emit a flat lookup
// table instead of a command switch.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

type kindEntry struct {
	Kind  string `yaml:"kind" json:"kind"`
	Event string `yaml:"event" json:"event"`
}

type schemaFile struct {
	Package string      `yaml:"package" json:"package"`
	Kinds   []kindEntry `yaml:"kinds" json:"kinds"`
}

const tableTemplate = `// Code generated by codegen/generate.go from codegen/tokenkinds.yaml.
// DO NOT EDIT.

package {{.Package}}

var generatedTable = map[string]Event{
{{- range .Kinds}}
	"{{.Kind}}": {{eventConst .Event}},
{{- end}}
}

// Default returns the standard upstream-kind-to-event Map shipped with
// this module.
func Default() *Map {
	return New(generatedTable)
}
`

func main() {
	yamlPath := flag.String("schema", "codegen/tokenkinds.yaml", "path to the kind->event YAML source")
	schemaPath := flag.String("jsonschema", "codegen/tokenkinds.schema.json", "path to the JSON Schema validating it")
	outPath := flag.String("out", "tokenkind/generated_table.go", "output Go source path")
	flag.Parse()

	if err := run(*yamlPath, *schemaPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "codegen:", err)
		os.Exit(1)
	}
}

func run(yamlPath, schemaPath, outPath string) error {
	raw, err := os.ReadFile(yamlPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", yamlPath, err)
	}

	var doc schemaFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	if err := validateAgainstSchema(doc, schemaPath); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	src, err := render(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return os.WriteFile(outPath, src, 0o644)
}

// validateAgainstSchema re-marshals the parsed YAML document to JSON and
// validates it against the JSON Schema, since jsonschema/v5 operates on
// decoded JSON-shaped values rather than YAML nodes directly.
func validateAgainstSchema(doc schemaFile, schemaPath string) error {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	asJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal for validation: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(asJSON, &v); err != nil {
		return fmt.Errorf("unmarshal for validation: %w", err)
	}

	return schema.Validate(v)
}

func render(doc schemaFile) ([]byte, error) {
	funcs := template.FuncMap{
		"eventConst": eventConstName,
	}
	tmpl, err := template.New("table").Funcs(funcs).Parse(tableTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}

// eventConstName maps the YAML's event tag to the tokenkind.Event
// constant name it corresponds to, falling back to a generic identifier
// form for tags that never got a named constant.
func eventConstName(event string) string {
	switch event {
	case "operator":
		return "EventOperator"
	case "keyword":
		return "EventKeyword"
	case "heredoc_beg":
		return "EventHeredocBeg"
	case "heredoc_end":
		return "EventHeredocEnd"
	case "nl":
		return "EventNewline"
	case "ignored_nl":
		return "EventIgnoredNewline"
	case "comment":
		return "EventComment"
	case "tstring_content":
		return "EventStringContent"
	case "on_ignored_sp":
		return "EventIgnoredSpace"
	case "ident":
		return "EventIdent"
	case "embexpr_beg":
		return "EventEmbExprBeg"
	case "embexpr_end":
		return "EventEmbExprEnd"
	case "regexp_end":
		return "EventRegexpEnd"
	case "eof":
		return "EventEndContent"
	default:
		return fmt.Sprintf("Event(%q)", event)
	}
}
