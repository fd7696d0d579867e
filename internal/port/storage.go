package port

import (
	"context"
	"io"
)

// Area separates uploaded source files from generated reports.
type Area string

const (
	AreaUploads Area = "uploads"
	AreaOutputs Area = "outputs"
)

// SaveInput encapsulates the parameters needed to store a file.
type SaveInput struct {
	Area        Area
	Name        string
	Body        io.Reader
	ContentType string
	Size        int64
}

// FileStore abstracts where uploads and generated reports live.
// Open reports a missing file as domain.ErrNotFound.
type FileStore interface {
	Save(ctx context.Context, input SaveInput) error
	Open(ctx context.Context, area Area, name string) (io.ReadCloser, error)
	Ping(ctx context.Context) error
}
