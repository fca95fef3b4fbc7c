package http

import (
	"reflect"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type createProductRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Price string `json:"price" validate:"required,numeric"`
	Stock int    `json:"stock" validate:"gte=0"`
}

type orderLineRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type createOrderRequest struct {
	ShippingAddress string             `json:"shippingAddress" validate:"required"`
	Items           []orderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status            string     `json:"status" validate:"required"`
	Notes             string     `json:"notes"`
	TrackingNumber    string     `json:"trackingNumber" validate:"max=100"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

type updatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type assignDeliveryRequest struct {
	DeliveryPersonID string `json:"deliveryPersonId" validate:"required,uuid"`
}

type updateDeliveryStatusRequest struct {
	Status   string `json:"status" validate:"required"`
	Notes    string `json:"notes"`
	Location string `json:"location" validate:"max=255"`
}

type updateAttachmentNotesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type updateComplaintStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	ResolutionNotes string `json:"resolutionNotes"`
}

// requestValidator plugs validator/v10 into echo. Failures are reported as
// errs.ErrValueIsInvalid naming the JSON fields.
type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{v: v}
}

func (r *requestValidator) Validate(i any) error {
	if err := r.v.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	return nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return err
	}
	return c.Validate(dst)
}
