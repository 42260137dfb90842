package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cvapi/internal/model"
	"cvapi/internal/service"
)

// ListCVs returns the caller's CVs.
//
// @Summary  List own CVs
// @Tags     cvs
// @Produce  json
// @Security BearerAuth
// @Param    limit  query int false "page size (default 10, max 100)"
// @Param    offset query int false "rows to skip"
// @Success  200 {object} service.CVListResult
// @Failure  400 {object} errorPayload
// @Failure  401 {object} errorPayload
// @Router   /cvs [get]
func ListCVs(svc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateCV creates a CV owned by the caller.
//
// @Summary  Create CV
// @Tags     cvs
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body model.CVPatch false "initial content"
// @Success  201 {object} model.CV
// @Failure  401 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Router   /cvs [post]
func CreateCV(svc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.CVPatch
		if err := decodeBody(c, &in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		cv, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		setETag(c, cv.Version)
		return c.Status(fiber.StatusCreated).JSON(cv)
	}
}

// GetCV returns a CV that is public or owned by the caller.
//
// @Summary  Get CV
// @Tags     cvs
// @Produce  json
// @Param    id path string true "CV id"
// @Success  200 {object} model.CV
// @Failure  403 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /cvs/{id} [get]
func GetCV(svc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		cv, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		setETag(c, cv.Version)
		return c.JSON(cv)
	}
}

// UpdateCV partially updates one of the caller's CVs. Only fields present in
// the body change. The expected version comes from the body or If-Match.
//
// @Summary  Update CV
// @Tags     cvs
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id       path   string        true  "CV id"
// @Param    If-Match header string        false "expected version"
// @Param    body     body   model.CVPatch true  "fields to change"
// @Success  200 {object} model.CV
// @Failure  404 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Router   /cvs/{id} [patch]
func UpdateCV(svc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		var patch model.CVPatch
		if err := decodeBody(c, &patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}
		if patch.ExpectedVersion == nil {
			if v, ok := parseVersion(c.Get(fiber.HeaderIfMatch)); ok {
				patch.ExpectedVersion = &v
			}
		}

		cv, err := svc.Update(c.UserContext(), id, patch)
		if err != nil {
			return writeServiceError(c, err)
		}
		setETag(c, cv.Version)
		return c.JSON(cv)
	}
}

// DeleteCV removes one of the caller's CVs.
//
// @Summary  Delete CV
// @Tags     cvs
// @Security BearerAuth
// @Param    id path string true "CV id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /cvs/{id} [delete]
func DeleteCV(svc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetAnalytics returns view, download and share counters.
//
// @Summary  CV analytics
// @Tags     cvs
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "CV id"
// @Success  200 {object} model.Analytics
// @Failure  404 {object} errorPayload
// @Router   /cvs/{id}/analytics [get]
func GetAnalytics(svc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		a, err := svc.Analytics(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// UploadPhoto stores a profile photo (multipart/form-data, field name: file).
//
// @Summary  Upload photo
// @Tags     cvs
// @Accept   mpfd
// @Produce  json
// @Security BearerAuth
// @Param    id   path     string true "CV id"
// @Param    file formData file   true "image"
// @Success  200 {object} model.CV
// @Failure  400 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Failure  503 {object} errorPayload
// @Router   /cvs/{id}/photo [post]
func UploadPhoto(svc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		cv, err := svc.UploadPhoto(c.UserContext(), id, f, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cv)
	}
}

// DeletePhoto removes the profile photo.
//
// @Summary  Delete photo
// @Tags     cvs
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "CV id"
// @Success  200 {object} model.CV
// @Router   /cvs/{id}/photo [delete]
func DeletePhoto(svc service.CVService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		cv, err := svc.DeletePhoto(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cv)
	}
}
