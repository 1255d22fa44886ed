package services_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"kudos/internal/services"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockS3Client is a mock implementation of services.S3API
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

// makeFileHeader builds a multipart.FileHeader the way an HTTP server would.
func makeFileHeader(t *testing.T, fieldName, fileName, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldName, fileName))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	assert.NoError(t, err)
	files := form.File[fieldName]
	assert.Len(t, files, 1)
	return files[0]
}

func TestStorageService_UploadAvatar(t *testing.T) {
	mockClient := new(MockS3Client)
	service := services.NewStorageServiceWithClient(mockClient, services.StorageConfig{
		Bucket: "kudos-avatars",
		Region: "us-east-1",
	})

	fileHeader := makeFileHeader(t, services.AvatarFieldName, "me.PNG", "image/png", []byte("fake image bytes"))

	mockClient.On("PutObject", mock.Anything, mock.AnythingOfType("*s3.PutObjectInput")).Run(func(args mock.Arguments) {
		input := args.Get(1).(*s3.PutObjectInput)
		assert.Equal(t, "kudos-avatars", *input.Bucket)
		assert.True(t, strings.HasSuffix(*input.Key, ".png"), "key keeps the lowercased file extension")
		assert.Equal(t, "image/png", *input.ContentType)
	}).Return(&s3.PutObjectOutput{}, nil).Once()

	url, err := service.UploadAvatar(context.Background(), fileHeader)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://kudos-avatars.s3.us-east-1.amazonaws.com/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	mockClient.AssertExpectations(t)
}

func TestStorageService_UploadAvatar_CustomEndpoint(t *testing.T) {
	mockClient := new(MockS3Client)
	service := services.NewStorageServiceWithClient(mockClient, services.StorageConfig{
		Bucket:   "kudos-avatars",
		Region:   "us-east-1",
		Endpoint: "http://127.0.0.1:9000/",
	})

	fileHeader := makeFileHeader(t, services.AvatarFieldName, "me.jpg", "image/jpeg", []byte("fake image bytes"))

	mockClient.On("PutObject", mock.Anything, mock.AnythingOfType("*s3.PutObjectInput")).Return(&s3.PutObjectOutput{}, nil).Once()

	url, err := service.UploadAvatar(context.Background(), fileHeader)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://127.0.0.1:9000/kudos-avatars/"))
	mockClient.AssertExpectations(t)
}

func TestStorageService_UploadAvatar_PutObjectError(t *testing.T) {
	mockClient := new(MockS3Client)
	service := services.NewStorageServiceWithClient(mockClient, services.StorageConfig{
		Bucket: "kudos-avatars",
		Region: "us-east-1",
	})

	fileHeader := makeFileHeader(t, services.AvatarFieldName, "me.png", "image/png", []byte("fake image bytes"))

	mockClient.On("PutObject", mock.Anything, mock.AnythingOfType("*s3.PutObjectInput")).Return(nil, fmt.Errorf("access denied")).Once()

	url, err := service.UploadAvatar(context.Background(), fileHeader)
	assert.Error(t, err)
	assert.Empty(t, url)
	assert.Contains(t, err.Error(), "failed to upload avatar")
	mockClient.AssertExpectations(t)
}
