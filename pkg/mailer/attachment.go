package mailer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// NewAttachmentFromFile reads a file from disk and builds an attachment.
// The whole file is read into memory, so this is only suitable for small
// attachments. If name is empty, the file's base name is used.
func NewAttachmentFromFile(path, name string) (Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Attachment{}, fmt.Errorf("%w: %s", ErrAttachmentNotFound, path)
		}
		return Attachment{}, fmt.Errorf("failed to read attachment %s: %w", path, err)
	}

	if name == "" {
		name = filepath.Base(path)
	}

	return Attachment{
		Filename: name,
		Content:  content,
	}, nil
}
