package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"

	"cvapi/internal/model"
	"cvapi/internal/storage"
)

// PhotoSettings bounds profile photo uploads.
type PhotoSettings struct {
	MaxBytes      int64
	AllowedPrefix string
	URLExpiry     time.Duration
}

// photoURLs resolves stored photo keys into presigned URLs.
type photoURLs struct {
	store  storage.Storage
	expiry time.Duration
	log    hclog.Logger
}

func (p photoURLs) resolve(ctx context.Context, cv *model.CV) {
	cv.PhotoURL = ""
	if cv.PhotoKey == "" || p.store == nil {
		return
	}
	url, err := p.store.PresignGet(ctx, cv.PhotoKey, p.expiry)
	if err != nil {
		p.log.Warn("photo_presign_failed", "cv_id", cv.ID, "error", err)
		return
	}
	cv.PhotoURL = url
}
