package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/pkg/apperrors"
)

// fakeStore implements storage.Storage in memory.
type fakeStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	failSave   error
	failDelete error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if f.failSave != nil {
		return f.failSave
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStore) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStore) GetURL(ctx context.Context, key string) (string, error) {
	return "/files/" + key, nil
}

func (f *fakeStore) GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "/files/" + key, nil
}

func (f *fakeStore) GetSize(ctx context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.objects[key])), nil
}

// fakeAttachmentRepo implements repositories.AttachmentRepository.
type fakeAttachmentRepo struct {
	mu          sync.Mutex
	attachments map[string]*models.Attachment
	nextID      int
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{attachments: make(map[string]*models.Attachment)}
}

func (f *fakeAttachmentRepo) Create(db *gorm.DB, attachment *models.Attachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	if attachment.ID == "" {
		attachment.ID = fmt.Sprintf("att-%d", f.nextID)
	}
	f.attachments[attachment.ID] = attachment
	return nil
}

func (f *fakeAttachmentRepo) FindByID(db *gorm.DB, id string) (*models.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.attachments[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, repositories.ErrAttachmentNotFound
}

func (f *fakeAttachmentRepo) Delete(db *gorm.DB, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.attachments[id]; !ok {
		return repositories.ErrAttachmentNotFound
	}
	delete(f.attachments, id)
	return nil
}

// buildFileHeader assembles a real multipart.FileHeader whose Open works.
func buildFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestMediaAttachStoresObjectThenRow(t *testing.T) {
	store := newFakeStore()
	attachmentRepo := newFakeAttachmentRepo()
	svc := NewMediaService(store, attachmentRepo)

	file := buildFileHeader(t, "icon", "pool.png", "png-bytes")

	attachment, err := svc.Attach(context.Background(), nil, file, "amenities", models.AttachmentKindAmenityIcon)
	require.NoError(t, err)

	assert.Equal(t, "pool.png", attachment.FileName)
	assert.Contains(t, attachment.PublicID, "amenities/")
	assert.Equal(t, "/files/"+attachment.PublicID, attachment.FileURL)
	assert.Equal(t, models.AttachmentKindAmenityIcon, attachment.Kind)

	exists, _ := store.Exists(context.Background(), attachment.PublicID)
	assert.True(t, exists)
	_, err = attachmentRepo.FindByID(nil, attachment.ID)
	assert.NoError(t, err)
}

func TestMediaAttachStoreFailureLeavesNoRow(t *testing.T) {
	store := newFakeStore()
	store.failSave = errors.New("store unavailable")
	attachmentRepo := newFakeAttachmentRepo()
	svc := NewMediaService(store, attachmentRepo)

	file := buildFileHeader(t, "icon", "pool.png", "png-bytes")

	_, err := svc.Attach(context.Background(), nil, file, "amenities", models.AttachmentKindAmenityIcon)
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Empty(t, attachmentRepo.attachments)
}

func TestMediaAttachNilFile(t *testing.T) {
	svc := NewMediaService(newFakeStore(), newFakeAttachmentRepo())

	_, err := svc.Attach(context.Background(), nil, nil, "amenities", models.AttachmentKindAmenityIcon)
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestMediaDetachRemoteFailureKeepsRow(t *testing.T) {
	store := newFakeStore()
	attachmentRepo := newFakeAttachmentRepo()
	svc := NewMediaService(store, attachmentRepo)

	file := buildFileHeader(t, "icon", "pool.png", "png-bytes")
	attachment, err := svc.Attach(context.Background(), nil, file, "amenities", models.AttachmentKindAmenityIcon)
	require.NoError(t, err)

	store.failDelete = errors.New("store unavailable")
	err = svc.Detach(context.Background(), nil, attachment.ID)
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.HTTPCode)

	_, err = attachmentRepo.FindByID(nil, attachment.ID)
	assert.NoError(t, err)
}

func TestMediaDetachRemovesRemoteThenRow(t *testing.T) {
	store := newFakeStore()
	attachmentRepo := newFakeAttachmentRepo()
	svc := NewMediaService(store, attachmentRepo)

	file := buildFileHeader(t, "icon", "pool.png", "png-bytes")
	attachment, err := svc.Attach(context.Background(), nil, file, "amenities", models.AttachmentKindAmenityIcon)
	require.NoError(t, err)

	require.NoError(t, svc.Detach(context.Background(), nil, attachment.ID))

	exists, _ := store.Exists(context.Background(), attachment.PublicID)
	assert.False(t, exists)
	_, err = attachmentRepo.FindByID(nil, attachment.ID)
	assert.Error(t, err)
}
