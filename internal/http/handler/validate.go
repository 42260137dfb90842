package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cvapi/internal/metrics"
	"cvapi/internal/model"
	"cvapi/internal/validation"
)

type validateResponse struct {
	validation.Result
	Sections map[string]validation.Result `json:"sections"`
}

// ValidateCV runs the validation engine on the CV in the body. With ?step=n
// only that editor step is checked. Nothing is stored.
//
// @Summary  Validate CV
// @Tags     validation
// @Accept   json
// @Produce  json
// @Param    step query int      false "editor step (0-4)"
// @Param    body body  model.CV true  "candidate CV"
// @Success  200 {object} validateResponse
// @Failure  400 {object} errorPayload
// @Router   /validate [post]
func ValidateCV(m *metrics.Domain) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cv model.CV
		if err := decodeBody(c, &cv); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		if raw := c.Query("step"); raw != "" {
			step, err := strconv.Atoi(raw)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_STEP", "invalid step")
			}
			res := validation.Step(step, &cv)
			m.Validated(res.IsValid)
			return c.JSON(res)
		}

		res := validation.Document(&cv)
		m.Validated(res.IsValid)
		return c.JSON(validateResponse{
			Result:   res,
			Sections: validation.Sections(&cv),
		})
	}
}
