package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.trai.ch/zerr"
)

const schemaName = "install.schema.json"

//go:embed install.schema.json
var schemaData []byte

var (
	installSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// Installfile represents the structure of the .darkstorage-install.yaml file.
type Installfile struct {
	Main           string `yaml:"main"`
	VersionPackage string `yaml:"versionPackage"`
	Remote         string `yaml:"remote"`
	Branch         string `yaml:"branch"`
	BuiltBy        string `yaml:"builtBy"`
}

func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = zerr.Wrap(err, "unmarshal install schema")
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, doc); err != nil {
			compileErr = zerr.Wrap(err, "add install schema resource")
			return
		}

		installSchema, err = compiler.Compile(schemaName)
		if err != nil {
			compileErr = zerr.Wrap(err, "compile install schema")
		}
	})

	return compileErr
}

// validate checks a decoded YAML document against the install schema.
// The document is round-tripped through JSON so the validator sees the
// same value types it would for a JSON file.
func validate(doc any) error {
	if err := compileSchema(); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return zerr.Wrap(err, "install file is not a JSON-compatible document")
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return zerr.Wrap(err, "re-read install file document")
	}

	return installSchema.Validate(v)
}
