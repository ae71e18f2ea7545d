package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock S3 Client
type MockS3Client struct {
	mock.Mock
	bodies []string
}

func (m *MockS3Client) UploadFile(ctx context.Context, reader io.Reader, objectKey string, size int64, metadata map[string]string, contentType string) error {
	body, _ := io.ReadAll(reader)
	m.bodies = append(m.bodies, string(body))
	args := m.Called(ctx, reader, objectKey, size, metadata, contentType)
	return args.Error(0)
}

func (m *MockS3Client) ObjectExists(ctx context.Context, objectKey string) (bool, error) {
	args := m.Called(ctx, objectKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockS3Client) GetBucketName() string {
	return "surveys"
}

func (m *MockS3Client) GetEndpoint() string {
	return "localhost:9000"
}

func (m *MockS3Client) GetPrefix() string {
	return "flights"
}

func fastRetry() RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.InitialBackoff = time.Millisecond
	cfg.MaxBackoff = 5 * time.Millisecond
	return cfg
}

func writeReport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flight1.csv")
	require.NoError(t, os.WriteFile(path, []byte("FileName\nDJI_0001.jpg\n"), 0644))
	return path
}

func TestPublish(t *testing.T) {
	path := writeReport(t)
	client := &MockS3Client{}
	client.On("UploadFile", mock.Anything, mock.Anything, "flight1.csv", int64(22),
		map[string]string{"photos": "1"}, "text/csv").Return(nil).Once()

	key, err := New(client, fastRetry()).Publish(context.Background(), path, 1)
	require.NoError(t, err)
	assert.Equal(t, "flight1.csv", key)
	assert.Equal(t, []string{"FileName\nDJI_0001.jpg\n"}, client.bodies)
	client.AssertExpectations(t)
}

func TestPublishRetriesTransientErrors(t *testing.T) {
	path := writeReport(t)
	client := &MockS3Client{}
	client.On("UploadFile", mock.Anything, mock.Anything, "flight1.csv", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.ErrorResponse{Code: "SlowDown", StatusCode: 503}).Twice()
	client.On("UploadFile", mock.Anything, mock.Anything, "flight1.csv", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	_, err := New(client, fastRetry()).Publish(context.Background(), path, 1)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "UploadFile", 3)

	// every attempt starts from the beginning of the file
	for _, body := range client.bodies {
		assert.Equal(t, "FileName\nDJI_0001.jpg\n", body)
	}
}

func TestPublishGivesUp(t *testing.T) {
	path := writeReport(t)
	client := &MockS3Client{}
	client.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("i/o timeout"))

	cfg := fastRetry()
	cfg.MaxRetries = 2
	_, err := New(client, cfg).Publish(context.Background(), path, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	client.AssertNumberOfCalls(t, "UploadFile", 3)
}

func TestPublishNonRetryable(t *testing.T) {
	path := writeReport(t)
	client := &MockS3Client{}
	client.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403})

	_, err := New(client, fastRetry()).Publish(context.Background(), path, 1)
	require.Error(t, err)
	client.AssertNumberOfCalls(t, "UploadFile", 1)
}

func TestPublishMissingReport(t *testing.T) {
	client := &MockS3Client{}
	_, err := New(client, fastRetry()).Publish(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), 0)
	assert.Error(t, err)
	client.AssertNotCalled(t, "UploadFile")
}

func TestRetryWithBackoffCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := RetryWithBackoff(ctx, "noop", func() error {
		calls++
		return nil
	}, fastRetry())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}
