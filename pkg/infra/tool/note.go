package tool

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const NoteToolName = "create_note"

var noteSchema = json.RawMessage(`{
  "type": "function",
  "function": {
    "name": "create_note",
    "description": "Save a markdown note for the user",
    "parameters": {
      "type": "object",
      "properties": {
        "note_name": {"type": "string", "description": "Short file-safe name of the note"},
        "note_content": {"type": "string", "description": "Markdown body of the note"}
      },
      "required": ["note_name", "note_content"]
    }
  }
}`)

var unsafeNoteChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Note writes notes as <dir>/<name>.md
type Note struct {
	dir string
}

var _ interfaces.Tool = (*Note)(nil)

func NewNote(dir string) *Note {
	return &Note{dir: dir}
}

func (n *Note) Name() string { return NoteToolName }

// Schema is the OpenAI tool object describing create_note
func (n *Note) Schema() json.RawMessage { return noteSchema }

func (n *Note) Run(ctx context.Context, args map[string]any) (string, error) {
	name, _ := args["note_name"].(string)
	content, _ := args["note_content"].(string)

	fileName := sanitizeNoteName(name)
	if fileName == "" {
		return "", goerr.Wrap(types.ErrInvalidArgument, "note_name is required", goerr.V("note_name", name))
	}

	if err := os.MkdirAll(n.dir, 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create notes directory", goerr.V("dir", n.dir))
	}

	path := filepath.Join(n.dir, fileName+".md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", goerr.Wrap(err, "failed to write note", goerr.V("path", path))
	}

	ctxlog.From(ctx).Info("Note created", "path", path)
	return "Created note " + fileName + ".md", nil
}

// sanitizeNoteName keeps a single path element made of safe characters
func sanitizeNoteName(name string) string {
	name = strings.TrimSuffix(filepath.Base(strings.TrimSpace(name)), ".md")
	name = unsafeNoteChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, ".-")
	return name
}
