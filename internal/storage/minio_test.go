package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cvapi/internal/config"
)

func TestNewMinIO_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MinIOConfig
		wantErr string
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{}, wantErr: "minio endpoint is required"},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000"}, wantErr: "minio credentials are required"},
		{name: "missing bucket", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, wantErr: "minio bucket is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.Nil(t, s)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestPhotoKey(t *testing.T) {
	cvID := "3f1c2b7a-9d4e-4b8a-8c2d-1a2b3c4d5e6f"

	a := PhotoKey(cvID)
	b := PhotoKey(cvID)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "photos/"+cvID+"/"))
	assert.True(t, IsPhotoOf(a, cvID))
	assert.False(t, IsPhotoOf(a, "other"))
	assert.False(t, IsPhotoOf("photos/"+cvID, cvID))
	assert.False(t, IsPhotoOf(a, ""))
}

func TestPhotoUploadMetadata(t *testing.T) {
	up := PhotoUpload{CVID: "cv-1", OwnerID: "user-1", Size: 10, ContentType: "image/png"}

	assert.Equal(t, map[string]string{"cv-id": "cv-1", "owner-id": "user-1"}, up.metadata())
}
