package http

import (
	"mime/multipart"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// AssignDelivery handles POST /api/v1/delivery/:orderId/assign.
func (s *Server) AssignDelivery(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	var req assignDeliveryRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	deliveryPersonID, err := kernel.UUIDFromString(req.DeliveryPersonID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPersonId", err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(actor, orderID, deliveryPersonID)
	if err != nil {
		return err
	}
	o, err := s.h.AssignDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newOrderView(o), "delivery assigned")
}

// UpdateDeliveryStatus handles PUT /api/v1/delivery/:orderId/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	var req updateDeliveryStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(actor, orderID, req.Status, req.Notes, req.Location)
	if err != nil {
		return err
	}
	o, err := s.h.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newOrderView(o), "delivery status updated")
}

// UploadProof handles POST /api/v1/delivery/:orderId/proof, a multipart form with
// "file", "proofType" and optional "notes".
func (s *Server) UploadProof(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	header, err := c.FormFile("file")
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("file", err)
	}
	content, err := header.Open()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("file", err)
	}
	defer content.Close()

	cmd, err := commands.NewUploadProofCommand(
		actor, orderID, fileOf(header), content, c.FormValue("proofType"), c.FormValue("notes"),
	)
	if err != nil {
		return err
	}
	a, err := s.h.UploadProof.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, newAttachmentView(a), "proof uploaded")
}

// ListProofs handles GET /api/v1/delivery/:orderId/proof.
func (s *Server) ListProofs(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewListOrderAttachmentsQuery(actor, orderID)
	if err != nil {
		return err
	}
	list, err := s.h.ListOrderAttachments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	views := make([]attachmentView, 0, len(list))
	for _, a := range list {
		views = append(views, newAttachmentView(a))
	}
	return ok(c, http.StatusOK, views, "")
}

// UpdateAttachmentNotes handles PATCH /api/v1/delivery/attachments/:id.
func (s *Server) UpdateAttachmentNotes(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	attachmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req updateAttachmentNotesRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateAttachmentNotesCommand(actor, attachmentID, req.Notes)
	if err != nil {
		return err
	}
	a, err := s.h.UpdateAttachmentNotes.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newAttachmentView(a), "attachment updated")
}

func fileOf(header *multipart.FileHeader) attachment.File {
	return attachment.File{
		Name:     header.Filename,
		MimeType: header.Header.Get(echo.HeaderContentType),
		Size:     header.Size,
	}
}
