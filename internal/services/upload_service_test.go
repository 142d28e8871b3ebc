package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"worknest_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader by writing and
// re-parsing a form, so Open() works like it does on a live request.
func makeFileHeader(t *testing.T, field, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func newUploadTestEnv() (*UploadService, *fakeStorage) {
	st := newFakeStorage()
	svc := NewUploadService(st, UploadConfig{
		MaxSize:      1024,
		AllowedTypes: []string{"application/pdf", "image/png"},
	})
	return svc, st
}

func TestUploadStoresAllowedFile(t *testing.T) {
	svc, st := newUploadTestEnv()

	fh := makeFileHeader(t, "resume", "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	ref, err := svc.Upload(context.Background(), fh, "applications/resumes")
	require.NoError(t, err)

	assert.NotEmpty(t, ref.PublicID)
	assert.Contains(t, ref.URL, ref.PublicID)

	exists, err := st.Exists(context.Background(), ref.PublicID)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := st.Get(context.Background(), ref.PublicID)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	svc, st := newUploadTestEnv()

	fh := makeFileHeader(t, "resume", "malware.exe", "application/x-msdownload", []byte("MZ"))
	_, err := svc.Upload(context.Background(), fh, "applications/resumes")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	assert.Empty(t, st.files)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc, st := newUploadTestEnv()

	big := bytes.Repeat([]byte("a"), 2048)
	fh := makeFileHeader(t, "resume", "resume.pdf", "application/pdf", big)
	_, err := svc.Upload(context.Background(), fh, "applications/resumes")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Empty(t, st.files)
}

func TestUploadFallsBackToExtensionForMimeType(t *testing.T) {
	svc, _ := newUploadTestEnv()

	// No Content-Type header on the part
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("photo", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	fh := form.File["photo"][0]
	fh.Header.Del("Content-Type")

	ref, err := svc.Upload(context.Background(), fh, "profiles/photos")
	require.NoError(t, err)
	assert.NotEmpty(t, ref.PublicID)
}

func TestDeleteIsBestEffort(t *testing.T) {
	svc, _ := newUploadTestEnv()

	// Neither the empty ID nor an unknown one should panic or error out
	svc.Delete(context.Background(), "")
	svc.Delete(context.Background(), "does/not/exist")
}
