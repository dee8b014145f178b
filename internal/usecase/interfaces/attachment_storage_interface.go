package interfaces

import (
	"context"
	"io"
)

// IAttachmentStorage abstracts receipt (boleta) uploads. Save stores the raw
// bytes and returns the stable reference path embedded in the expense.
type IAttachmentStorage interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
