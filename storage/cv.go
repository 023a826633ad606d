package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dental-forms-backend/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxCvSize is the upload cap for CV attachments (5 MiB).
const MaxCvSize = 5 << 20

var (
	ErrFileType = errors.New("only PDF and DOC files are allowed")
	ErrFileSize = errors.New("file exceeds the 5 MB limit")
)

// Declared Content-Type values accepted per extension.
var allowedDeclared = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
}

// Sniffed types accepted for any of the allowed extensions. DOC files sniff
// as OLE storage and DOCX as a zip container depending on how much structure
// the detector can see.
var allowedSniffed = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/x-ole-storage",
	"application/zip",
}

// CvDir is the directory CV uploads are written to.
func CvDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("uploads", "cv")
}

// EnsureUploadDirs creates the upload directory tree at process start.
func EnsureUploadDirs() error {
	if err := os.MkdirAll(CvDir(), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir %s: %w", CvDir(), err)
	}
	return nil
}

func declaredTypeOK(ext, declared string) bool {
	mimes, ok := allowedDeclared[ext]
	if !ok {
		return false
	}
	declared = strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	for _, m := range mimes {
		if declared == m {
			return true
		}
	}
	return false
}

func sniffedTypeOK(detected *mimetype.MIME) bool {
	for _, m := range allowedSniffed {
		if detected.Is(m) {
			return true
		}
	}
	return false
}

// SaveCv validates and stores one uploaded CV. Extension, declared mime and
// sniffed content must all agree on an allowed type, and the size cap is
// enforced before anything is written, so a rejected upload leaves no file
// behind.
func SaveCv(fh *multipart.FileHeader) (models.CvFile, error) {
	if fh.Size > MaxCvSize {
		return models.CvFile{}, ErrFileSize
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !declaredTypeOK(ext, fh.Header.Get("Content-Type")) {
		return models.CvFile{}, ErrFileType
	}

	src, err := fh.Open()
	if err != nil {
		return models.CvFile{}, fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	// Read one byte past the cap so an understated Content-Length can't
	// smuggle an oversized file through.
	content, err := io.ReadAll(io.LimitReader(src, MaxCvSize+1))
	if err != nil {
		return models.CvFile{}, fmt.Errorf("storage: read upload: %w", err)
	}
	if int64(len(content)) > MaxCvSize {
		return models.CvFile{}, ErrFileSize
	}
	if !sniffedTypeOK(mimetype.Detect(content)) {
		return models.CvFile{}, ErrFileType
	}

	name := fmt.Sprintf("cv-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	dest := filepath.Join(CvDir(), name)
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return models.CvFile{}, fmt.Errorf("storage: write %s: %w", dest, err)
	}

	return models.CvFile{
		Filename:     name,
		Path:         dest,
		OriginalName: fh.Filename,
		Mimetype:     fh.Header.Get("Content-Type"),
		Size:         int64(len(content)),
	}, nil
}
