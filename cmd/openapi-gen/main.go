// Command openapi-gen renders the API document to api-docs/openapi.json and
// api-docs/openapi.yaml for documentation tooling and schema-conformance
// checks. The output depends only on the schema definitions, never on
// runtime data.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"movies-api/internal/openapi"
)

func main() {
	dir := flag.String("dir", "api-docs", "output directory for the generated document")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	doc := openapi.Generate()

	jsonDoc, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("marshal json: %v", err)
	}
	if err := os.WriteFile(filepath.Join(*dir, "openapi.json"), append(jsonDoc, '\n'), 0o644); err != nil {
		log.Fatalf("write openapi.json: %v", err)
	}

	yamlDoc, err := yaml.Marshal(doc)
	if err != nil {
		log.Fatalf("marshal yaml: %v", err)
	}
	if err := os.WriteFile(filepath.Join(*dir, "openapi.yaml"), yamlDoc, 0o644); err != nil {
		log.Fatalf("write openapi.yaml: %v", err)
	}

	log.Printf("OpenAPI document written to %s", *dir)
}
