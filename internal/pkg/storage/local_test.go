package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("pdf-bytes"), "absences/1/2/doc.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "absences/1/2/doc.pdf", path)
	assert.Equal(t, "http://localhost:8080/uploads/absences/1/2/doc.pdf", s.URL(path))

	content, err := os.ReadFile(filepath.Join(dir, "absences", "1", "2", "doc.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))

	require.NoError(t, s.Delete(ctx, path))
	require.NoError(t, s.Delete(ctx, path))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "uploads"), "/uploads")
	require.NoError(t, err)

	path, err := s.Upload(context.Background(), strings.NewReader("x"), "../../etc/passwd", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "etc/passwd", path)
	_, statErr := os.Stat(filepath.Join(dir, "uploads", "etc", "passwd"))
	assert.NoError(t, statErr)

	_, err = s.Upload(context.Background(), strings.NewReader("x"), "", "text/plain")
	assert.Error(t, err)
}
