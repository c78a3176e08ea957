package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/photoalbum-api/internal/store"
)

// fakeClient keeps objects in memory.
type fakeClient struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newFakeClient() *fakeClient {
	return &fakeClient{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeClient) PutObject(
	_ context.Context, in *awss3.PutObjectInput, _ ...func(*awss3.Options),
) (*awss3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.objects[key] = data
	f.types[key] = aws.ToString(in.ContentType)
	return &awss3.PutObjectOutput{}, nil
}

func (f *fakeClient) GetObject(
	_ context.Context, in *awss3.GetObjectInput, _ ...func(*awss3.Options),
) (*awss3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	data, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &awss3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentType:   aws.String(f.types[key]),
		ContentLength: aws.Int64(int64(len(data))),
	}, nil
}

func (f *fakeClient) DeleteObject(
	_ context.Context, in *awss3.DeleteObjectInput, _ ...func(*awss3.Options),
) (*awss3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &awss3.DeleteObjectOutput{}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobStoreRoundTrip(t *testing.T) {
	client := newFakeClient()
	s := NewBlobStore(client, "photos", quietLogger())
	ctx := context.Background()
	content := []byte("jpeg bytes")

	require.NoError(t, s.Put(ctx, "albums/A1/P1.jpg", "image/jpeg", bytes.NewReader(content), int64(len(content))))
	assert.Contains(t, client.objects, "photos/albums/A1/P1.jpg")

	blob, err := s.Get(ctx, "albums/A1/P1.jpg")
	require.NoError(t, err)
	defer func() { _ = blob.Body.Close() }()

	got, err := io.ReadAll(blob.Body)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, "image/jpeg", blob.ContentType)
	assert.Equal(t, int64(len(content)), blob.ContentLength)

	require.NoError(t, s.Delete(ctx, "albums/A1/P1.jpg"))
	_, err = s.Get(ctx, "albums/A1/P1.jpg")
	assert.ErrorIs(t, err, store.ErrBlobNotFound)
}

func TestBlobStoreMissingKey(t *testing.T) {
	s := NewBlobStore(newFakeClient(), "photos", quietLogger())

	_, err := s.Get(context.Background(), "albums/A1/missing.jpg")
	assert.ErrorIs(t, err, store.ErrBlobNotFound)
	assert.True(t, store.IsNotFoundError(err))

	assert.NoError(t, s.Delete(context.Background(), "albums/A1/missing.jpg"))
}

func TestBlobStoreClientFailure(t *testing.T) {
	client := newFakeClient()
	client.err = errors.New("connection refused")
	s := NewBlobStore(client, "photos", quietLogger())
	ctx := context.Background()

	err := s.Put(ctx, "k", "image/jpeg", bytes.NewReader(nil), 0)
	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "put", storeErr.Operation)

	_, err = s.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, store.IsNotFoundError(err))

	assert.Error(t, s.Delete(ctx, "k"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.True(t, isNotFound(&types.NotFound{}))
	assert.False(t, isNotFound(errors.New("other")))
}

func TestNewBlobStorePanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewBlobStore(nil, "photos", nil) })
}
