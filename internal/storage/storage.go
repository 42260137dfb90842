// Package storage keeps CV profile photos in an S3-compatible bucket.
// Implementations stream content and never touch local disk.
package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhotoPrefix is the key prefix shared by every profile photo.
const PhotoPrefix = "photos"

// PhotoKey returns a fresh object key for a photo of cvID. Every upload gets
// its own key, so an old presigned URL never serves the new image.
func PhotoKey(cvID string) string {
	return path.Join(PhotoPrefix, cvID, uuid.NewString())
}

// IsPhotoOf reports whether key was produced by PhotoKey for cvID.
func IsPhotoOf(key, cvID string) bool {
	return cvID != "" && strings.HasPrefix(key, PhotoPrefix+"/"+cvID+"/")
}

// PhotoUpload describes an object being written. Size must be exact.
type PhotoUpload struct {
	CVID        string
	OwnerID     string
	Size        int64
	ContentType string
}

// metadata is attached to the object so a bucket listing can be traced back to its CV.
func (u PhotoUpload) metadata() map[string]string {
	return map[string]string{
		"cv-id":    u.CVID,
		"owner-id": u.OwnerID,
	}
}

// Object is what the backend reports after a successful write.
type Object struct {
	Key  string
	Size int64
	ETag string
}

// Storage is the photo store used by the CV services.
type Storage interface {
	// Put uploads r under key.
	Put(ctx context.Context, key string, r io.Reader, up PhotoUpload) (Object, error)
	// Delete removes an object by key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
