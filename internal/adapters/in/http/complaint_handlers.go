package http

import (
	"io"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateComplaint handles POST /api/v1/complaints, a multipart form with "type",
// "title", "description", optional "orderId" and up to five "attachments".
func (s *Server) CreateComplaint(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := optionalUUID("orderId", c.FormValue("orderId"))
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("form", err)
	}

	uploads := make([]commands.Upload, 0, len(form.File["attachments"]))
	closers := make([]io.Closer, 0, len(form.File["attachments"]))
	defer func() {
		for _, closer := range closers {
			_ = closer.Close()
		}
	}()
	for _, header := range form.File["attachments"] {
		content, openErr := header.Open()
		if openErr != nil {
			return errs.NewValueIsInvalidErrorWithCause("attachments", openErr)
		}
		closers = append(closers, content)
		uploads = append(uploads, commands.Upload{File: fileOf(header), Content: content})
	}

	cmd, err := commands.NewCreateComplaintCommand(
		actor, c.FormValue("type"), c.FormValue("title"), c.FormValue("description"), orderID, uploads,
	)
	if err != nil {
		return err
	}
	created, err := s.h.CreateComplaint.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, newComplaintView(created), "complaint created")
}

// UpdateComplaintStatus handles PUT /api/v1/complaints/:id/status.
func (s *Server) UpdateComplaintStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	complaintID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req updateComplaintStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateComplaintStatusCommand(actor, complaintID, req.Status, req.ResolutionNotes)
	if err != nil {
		return err
	}
	updated, err := s.h.UpdateComplaintStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newComplaintView(updated), "complaint status updated")
}
