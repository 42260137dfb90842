package handler

import (
	"github.com/gofiber/fiber/v2"

	"cvapi/internal/model"
	"cvapi/internal/service"
)

type eventRequest struct {
	Type model.EventKind `json:"type"`
}

// GetPublicCV serves a published CV by slug.
//
// @Summary  Public CV
// @Tags     public
// @Produce  json
// @Param    slug path string true "public slug"
// @Success  200 {object} model.PublicCV
// @Failure  404 {object} errorPayload
// @Router   /public/cvs/{slug} [get]
func GetPublicCV(svc service.PublicService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cv, err := svc.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cv)
	}
}

// RecordPublicEvent counts a download or share of a published CV.
//
// @Summary  Record public event
// @Tags     public
// @Accept   json
// @Param    slug path string       true "public slug"
// @Param    body body eventRequest true "event"
// @Success  204
// @Failure  404 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Router   /public/cvs/{slug}/events [post]
func RecordPublicEvent(svc service.PublicService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req eventRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}
		if err := svc.RecordEvent(c.UserContext(), c.Params("slug"), req.Type); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
