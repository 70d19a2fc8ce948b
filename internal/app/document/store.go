/*
Package document implements flat-file storage for uploaded documents.

A Store writes each upload under a root directory supplied at construction
time, one file per upload, named by the client-supplied filename. The root is
created lazily on first write. Uploading the same filename twice overwrites
the earlier content (last writer wins).
*/
package document

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"actionapi/internal/pkg/errs"
	"actionapi/internal/pkg/logx"
)

// StatusUploaded is the status literal reported for every successful save.
// Failures never produce a partial status; they surface as errors instead.
const StatusUploaded = "uploaded"

// UploadResponse reports the outcome of a successful save.
type UploadResponse struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
}

// Store writes uploaded documents under a fixed root directory.
type Store struct {
	root string
}

// NewStore returns a Store rooted at the given directory. The directory is
// not created until the first save.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the directory this store writes into.
func (s *Store) Root() string {
	return s.root
}

// sanitizeFilename reduces the client-supplied name to a safe leaf name.
// Names that are empty, refer to the current or parent directory, or contain
// path separators are rejected so an upload can never escape the root.
func sanitizeFilename(name string) (string, *errs.CustomError) {
	if strings.ContainsAny(name, `/\`) {
		return "", errs.NewError(errs.ErrInvalidFilename)
	}

	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." {
		return "", errs.NewError(errs.ErrInvalidFilename)
	}

	return name, nil
}

// Save writes data to <root>/<filename>, creating the root if absent and
// overwriting any existing file of the same name. The write goes through a
// uniquely named temporary file and a rename, so concurrent saves to the same
// filename cannot interleave partial content.
func (s *Store) Save(filename string, data []byte) (*UploadResponse, *errs.CustomError) {
	leaf, customErr := sanitizeFilename(filename)
	if customErr != nil {
		return nil, customErr
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		logx.Error(err, "Failed to create upload directory", "dir", s.root)
		return nil, errs.NewError(errs.ErrFileStorageFailed, err.Error())
	}

	tmpPath := filepath.Join(s.root, fmt.Sprintf(".%s.%s.tmp", leaf, uuid.New().String()))
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		logx.Error(err, "Failed to write uploaded file", "filename", leaf)
		return nil, errs.NewError(errs.ErrFileStorageFailed, err.Error())
	}

	finalPath := filepath.Join(s.root, leaf)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		logx.Error(err, "Failed to finalize uploaded file", "filename", leaf)
		return nil, errs.NewError(errs.ErrFileStorageFailed, err.Error())
	}

	result := &UploadResponse{Filename: leaf, Status: StatusUploaded}
	logx.Info("File saved", "filename", leaf, "bytes", len(data))
	return result, nil
}

// SaveBase64 decodes a base64 payload and saves the resulting bytes.
// Unlike identity claims decoding, a malformed payload here fails the
// request: the caller asked for the file to be stored and silently storing
// nothing would lose data.
func (s *Store) SaveBase64(filename string, fileData string) (*UploadResponse, *errs.CustomError) {
	data, err := base64.StdEncoding.DecodeString(fileData)
	if err != nil {
		return nil, errs.NewError(errs.ErrFileDecodeFailed, err.Error())
	}

	return s.Save(filename, data)
}
