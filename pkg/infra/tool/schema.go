package tool

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
)

// LoadSchemas reads every *.json file of dir as one tool schema, in file name order.
// An empty dir yields no schemas.
func LoadSchemas(dir string) ([]json.RawMessage, error) {
	if dir == "" {
		return nil, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tool schemas", goerr.V("dir", dir))
	}
	sort.Strings(files)

	schemas := make([]json.RawMessage, 0, len(files))
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read tool schema", goerr.V("file", file))
		}
		if !gjson.ValidBytes(raw) {
			return nil, goerr.Wrap(types.ErrParse, "tool schema is not valid JSON", goerr.V("file", file))
		}
		if SchemaName(raw) == "" {
			return nil, goerr.Wrap(types.ErrParse, "tool schema has no function.name", goerr.V("file", file))
		}
		schemas = append(schemas, json.RawMessage(raw))
	}
	return schemas, nil
}

// SchemaName returns function.name of an OpenAI tool object
func SchemaName(schema []byte) string {
	return gjson.GetBytes(schema, "function.name").String()
}

// WithBuiltin appends builtin schemas whose names are not defined in schemas yet
func WithBuiltin(schemas []json.RawMessage, builtin ...json.RawMessage) []json.RawMessage {
	defined := make(map[string]bool, len(schemas))
	for _, s := range schemas {
		defined[SchemaName(s)] = true
	}
	for _, b := range builtin {
		if !defined[SchemaName(b)] {
			schemas = append(schemas, b)
		}
	}
	return schemas
}
