package main

import (
	"os"

	"github.com/ccparse/ccparse/parser"
	"github.com/ccparse/ccparse/symtab"
	"gopkg.in/yaml.v3"
)

// tweakerFile is the --tweaker-file YAML shape: a flat list of typedef
// names and enum constants the parser should treat as already declared,
// for source that references headers this tool never lexed itself.
type tweakerFile struct {
	Typedefs      []string `yaml:"typedefs"`
	EnumConstants []string `yaml:"enum_constants"`
}

// loadTweaker reads path (if non-empty) and returns a ContextTweaker
// that seeds the parser's symbol table accordingly. A nil tweaker is
// returned for an empty path.
func loadTweaker(path string) (parser.ContextTweaker, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tf tweakerFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}
	return func(t *symtab.Table) {
		for _, name := range tf.Typedefs {
			t.AddTypedefName(name)
		}
		for _, name := range tf.EnumConstants {
			t.AddEnumConstant(name)
		}
	}, nil
}
