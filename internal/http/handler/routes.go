package handler

import (
	"bytes"
	"database/sql"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cvapi/internal/metrics"
	"cvapi/internal/service"
)

// Dependencies are the collaborators the HTTP layer dispatches to.
type Dependencies struct {
	DB      *sql.DB
	CVs     service.CVService
	Public  service.PublicService
	Drafts  service.DraftService
	Metrics *metrics.Domain
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate between HTTP and the services.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())

	app.Post("/validate", ValidateCV(deps.Metrics))

	cvs := app.Group("/cvs")
	cvs.Get("/", ListCVs(deps.CVs))
	cvs.Post("/", CreateCV(deps.CVs))
	cvs.Get("/:id", GetCV(deps.CVs))
	cvs.Patch("/:id", UpdateCV(deps.CVs))
	cvs.Delete("/:id", DeleteCV(deps.CVs))
	cvs.Get("/:id/analytics", GetAnalytics(deps.CVs))
	cvs.Post("/:id/photo", UploadPhoto(deps.CVs))
	cvs.Delete("/:id/photo", DeletePhoto(deps.CVs))

	cvs.Get("/:id/draft", GetDraft(deps.Drafts))
	cvs.Put("/:id/draft", SaveDraft(deps.Drafts))
	cvs.Delete("/:id/draft", DiscardDraft(deps.Drafts))
	cvs.Post("/:id/draft/commit", CommitDraft(deps.Drafts))

	public := app.Group("/public/cvs")
	public.Get("/:slug", GetPublicCV(deps.Public))
	public.Post("/:slug/events", RecordPublicEvent(deps.Public))
}

// pathID returns the :id parameter when it is a UUID, writing INVALID_ID otherwise.
func pathID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		return "", false
	}
	return id, true
}

// decodeBody decodes a JSON body with the app's decoder. An empty body leaves out untouched.
func decodeBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, out)
}

// parseVersion reads an If-Match header holding a version number, e.g. "3" or W/"3".
func parseVersion(header string) (int, bool) {
	v := strings.TrimSpace(header)
	v = strings.TrimPrefix(v, "W/")
	v = strings.Trim(v, `"`)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func setETag(c *fiber.Ctx, version int) {
	c.Set(fiber.HeaderETag, `"`+strconv.Itoa(version)+`"`)
}
