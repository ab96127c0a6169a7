package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/depherd/pkg/infra/tool"
	"github.com/m-mizutani/gt"
)

func TestNote_Run(t *testing.T) {
	dir := t.TempDir()
	note := tool.NewNote(dir)
	ctx := context.Background()

	t.Run("writes markdown file", func(t *testing.T) {
		msg, err := note.Run(ctx, map[string]any{"note_name": "shopping list", "note_content": "- milk"})
		gt.NoError(t, err)
		gt.Value(t, msg).Equal("Created note shopping-list.md")

		data, err := os.ReadFile(filepath.Join(dir, "shopping-list.md"))
		gt.NoError(t, err)
		gt.Value(t, string(data)).Equal("- milk")
	})

	t.Run("path traversal stays in dir", func(t *testing.T) {
		_, err := note.Run(ctx, map[string]any{"note_name": "../../etc/passwd", "note_content": "x"})
		gt.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "passwd.md"))
		gt.NoError(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := note.Run(ctx, map[string]any{"note_content": "x"})
		gt.True(t, errors.Is(err, types.ErrInvalidArgument))
	})

	t.Run("name made of dots only", func(t *testing.T) {
		_, err := note.Run(ctx, map[string]any{"note_name": "..", "note_content": "x"})
		gt.True(t, errors.Is(err, types.ErrInvalidArgument))
	})
}

func TestLoadSchemas(t *testing.T) {
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "b_weather.json"),
		[]byte(`{"type":"function","function":{"name":"get_weather"}}`), 0o644))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "a_note.json"),
		[]byte(`{"type":"function","function":{"name":"create_note"}}`), 0o644))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	schemas, err := tool.LoadSchemas(dir)
	gt.NoError(t, err)
	gt.Number(t, len(schemas)).Equal(2)
	gt.Value(t, tool.SchemaName(schemas[0])).Equal("create_note")
	gt.Value(t, tool.SchemaName(schemas[1])).Equal("get_weather")

	merged := tool.WithBuiltin(schemas, tool.NewNote(dir).Schema())
	gt.Number(t, len(merged)).Equal(2)

	merged = tool.WithBuiltin([]json.RawMessage{schemas[1]}, tool.NewNote(dir).Schema())
	gt.Number(t, len(merged)).Equal(2)
	gt.Value(t, tool.SchemaName(merged[1])).Equal("create_note")
}

func TestLoadSchemas_Invalid(t *testing.T) {
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"type":`), 0o644))

	_, err := tool.LoadSchemas(dir)
	gt.True(t, errors.Is(err, types.ErrParse))

	schemas, err := tool.LoadSchemas("")
	gt.NoError(t, err)
	gt.Number(t, len(schemas)).Equal(0)
}
