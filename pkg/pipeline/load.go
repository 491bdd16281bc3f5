package pipeline

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/rashika27/frameview/pkg/errors"
	"github.com/rashika27/frameview/pkg/frame"
	pkgio "github.com/rashika27/frameview/pkg/io"
	"github.com/rashika27/frameview/pkg/sheet"
)

// Decode turns raw input bytes into a frame. JSON datasets are recognized by
// a .json name or a leading '{'; everything else is read as a workbook.
func Decode(source string, data []byte) (*frame.Frame, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New(errors.ErrCodeFileRead, "%s is empty", displayName(source))
	}
	if IsJSON(source, data) {
		f, err := pkgio.ReadJSON(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileRead, err, "read %s", displayName(source))
		}
		return f, nil
	}
	return sheet.Read(bytes.NewReader(data))
}

// IsJSON reports whether input named source with content data is a JSON
// frame dataset.
func IsJSON(source string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(source), ".json") {
		return true
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func displayName(source string) string {
	if source == "" {
		return "input"
	}
	return source
}
