package export

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/filex"
)

type FileExporter struct {
	dir string
}

func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{dir: dir}
}

func (e *FileExporter) Export(_ context.Context, r Report) (string, error) {
	b, err := r.Encode()
	if err != nil {
		return "", err
	}
	dir, err := filex.EnsureDir(e.dir)
	if err != nil {
		return "", err
	}
	return filex.WriteFile(dir, r.Name(), b)
}
