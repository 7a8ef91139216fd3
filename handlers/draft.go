package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"clipfeed/feed"
	"clipfeed/media"
	"clipfeed/middleware"
	"clipfeed/models"
)

type DraftFieldsRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type DragRequest struct {
	Active bool `json:"active"`
}

// GetDraft handles GET /api/draft and returns the current draft snapshot,
// including whether submit is currently allowed.
func GetDraft(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	return c.JSON(sess.Draft.View())
}

// UpdateDraftFields handles PUT /api/draft/fields. Name and location are
// independently editable; omitted fields are left untouched.
func UpdateDraftFields(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	req := new(DraftFieldsRequest)
	if err := c.BodyParser(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name != nil {
		sess.Draft.SetName(*req.Name)
	}
	if req.Location != nil {
		sess.Draft.SetLocation(*req.Location)
	}
	return c.JSON(sess.Draft.View())
}

// SelectDraftFile handles POST /api/draft/file, the file-picker path.
func SelectDraftFile(c *fiber.Ctx) error {
	return ingestDraftFile(c, false)
}

// DropDraftFile handles POST /api/draft/drop, the drag-and-drop path. Both
// paths feed the draft's single file slot; the newest selection wins.
func DropDraftFile(c *fiber.Ctx) error {
	return ingestDraftFile(c, true)
}

func ingestDraftFile(c *fiber.Ctx, dropped bool) error {
	sess := middleware.CurrentSession(c)

	fh, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A file is required"))
	}

	f, err := fh.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	up := media.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}
	if err := provider.Accepts(up); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	if dropped {
		sess.Draft.DropFile(up)
	} else {
		sess.Draft.SelectFile(up)
	}
	return c.JSON(sess.Draft.View())
}

// SetDragState handles PUT /api/draft/drag. Drag hover state is purely
// visual feedback for the drop target.
func SetDragState(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	req := new(DragRequest)
	if err := c.BodyParser(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	sess.Draft.SetDragActive(req.Active)
	return c.JSON(sess.Draft.View())
}

// SubmitDraft handles POST /api/draft/submit. An incomplete draft is
// rejected without touching the feed.
func SubmitDraft(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	post, err := sess.Draft.Submit(sess.Feed, provider)
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrDraftIncomplete):
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Name, location and a file are required"))
		case errors.Is(err, media.ErrNoFile), errors.Is(err, media.ErrTooLarge):
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		default:
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// CancelDraft handles DELETE /api/draft: discard edits and the selected
// file without submitting anything.
func CancelDraft(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	sess.Draft.Cancel()
	return c.JSON(sess.Draft.View())
}
