package handler

import (
	"github.com/gofiber/fiber/v2"

	"cvapi/internal/model"
	"cvapi/internal/service"
)

// GetDraft returns the caller's pending edits of a CV.
//
// @Summary  Get draft
// @Tags     drafts
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "CV id"
// @Success  200 {object} draft.Draft
// @Failure  404 {object} errorPayload
// @Router   /cvs/{id}/draft [get]
func GetDraft(svc service.DraftService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		d, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// SaveDraft merges the body into the caller's draft of a CV.
//
// @Summary  Save draft
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string        true "CV id"
// @Param    body body model.CVPatch true "fields to stage"
// @Success  200 {object} draft.Draft
// @Router   /cvs/{id}/draft [put]
func SaveDraft(svc service.DraftService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		var patch model.CVPatch
		if err := decodeBody(c, &patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}
		d, err := svc.Save(c.UserContext(), id, patch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// DiscardDraft drops the caller's draft of a CV.
//
// @Summary  Discard draft
// @Tags     drafts
// @Security BearerAuth
// @Param    id path string true "CV id"
// @Success  204
// @Router   /cvs/{id}/draft [delete]
func DiscardDraft(svc service.DraftService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		if err := svc.Discard(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CommitDraft applies the caller's draft to the CV.
//
// @Summary  Commit draft
// @Tags     drafts
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "CV id"
// @Success  200 {object} model.CV
// @Failure  404 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Router   /cvs/{id}/draft/commit [post]
func CommitDraft(svc service.DraftService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		cv, err := svc.Commit(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		setETag(c, cv.Version)
		return c.JSON(cv)
	}
}
