package file

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

var attachmentContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// StoredFile is an uploaded file with its storage path and public URL.
type StoredFile struct {
	Path string
	URL  string
}

type FileService interface {
	// UploadAbsenceAttachment stores a supporting document for an absence request
	UploadAbsenceAttachment(ctx context.Context, tenantID, employeeID int64, file io.Reader, filename string) (StoredFile, error)
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func (s *fileServiceImpl) UploadAbsenceAttachment(ctx context.Context, tenantID, employeeID int64, file io.Reader, filename string) (StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := attachmentContentTypes[ext]
	if !ok {
		return StoredFile{}, validator.Field("file", "invalid file type: only pdf, jpg, jpeg, png allowed")
	}

	// Generate unique filename
	name := uuid.New().String() + ext
	p := path.Join("absences", fmt.Sprint(tenantID), fmt.Sprint(employeeID), name)

	uploadedPath, err := s.storage.Upload(ctx, file, p, contentType)
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to upload absence attachment: %w", err)
	}

	return StoredFile{Path: uploadedPath, URL: s.storage.URL(uploadedPath)}, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
