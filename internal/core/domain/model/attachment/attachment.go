package attachment

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// MaxFileSize is the upper bound for any uploaded image.
const MaxFileSize int64 = 5 << 20

var ErrAttachmentIsNotConstructed = errors.New("Attachment must be created via NewAttachment constructor")

// ProofType says what an attachment proves.
type ProofType string

const (
	ProofSignature ProofType = "signature"
	ProofDelivery  ProofType = "delivery_proof"
	ProofReturn    ProofType = "return_proof"
)

func ParseProofType(s string) (ProofType, error) {
	t := ProofType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case ProofSignature, ProofDelivery, ProofReturn:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("proofType", fmt.Errorf("%q is not a proof type", s))
	}
}

// File describes an upload before its bytes are stored.
type File struct {
	Name     string
	MimeType string
	Size     int64
}

// Validate accepts non-empty images of at most MaxFileSize bytes.
func (f File) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return errs.NewValueIsRequiredError("file")
	}
	if f.Size <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("file", fmt.Errorf("%s is empty", f.Name))
	}
	if f.Size > MaxFileSize {
		return errs.NewValueIsOutOfRangeError("file size", f.Size, 1, MaxFileSize)
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.MimeType)), "image/") {
		return errs.NewValueIsInvalidErrorWithCause("file", fmt.Errorf("mime type %q is not an image", f.MimeType))
	}
	return nil
}

// StoredName is the generated name under which the bytes are kept: the id plus the
// original extension.
func (f File) StoredName(id kernel.UUID) string {
	return id.String() + strings.ToLower(filepath.Ext(f.Name))
}

// Attachment is a proof-of-delivery record. Only notes change after creation.
type Attachment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	uploadedByID kernel.UUID
	fileName     string
	path         string
	mimeType     string
	size         int64
	proofType    ProofType
	notes        string
	createdAt    time.Time

	isConstructed bool
}

func NewAttachment(
	id, orderID, uploadedByID kernel.UUID,
	file File,
	path string,
	proofType ProofType,
	notes string,
	now time.Time,
) (*Attachment, error) {
	var pathErr error
	if strings.TrimSpace(path) == "" {
		pathErr = errs.NewValueIsRequiredError("path")
	}
	_, typeErr := ParseProofType(string(proofType))

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		uploadedByID.Validate(),
		file.Validate(),
		pathErr,
		typeErr,
	); err != nil {
		return nil, err
	}

	return &Attachment{
		id:            id,
		orderID:       orderID,
		uploadedByID:  uploadedByID,
		fileName:      file.Name,
		path:          path,
		mimeType:      file.MimeType,
		size:          file.Size,
		proofType:     proofType,
		notes:         strings.TrimSpace(notes),
		createdAt:     now,
		isConstructed: true,
	}, nil
}

func RestoreAttachment(
	id, orderID, uploadedByID kernel.UUID,
	fileName, path, mimeType string,
	size int64,
	proofType ProofType,
	notes string,
	createdAt time.Time,
) (*Attachment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), uploadedByID.Validate()); err != nil {
		return nil, err
	}
	return &Attachment{
		id:            id,
		orderID:       orderID,
		uploadedByID:  uploadedByID,
		fileName:      fileName,
		path:          path,
		mimeType:      mimeType,
		size:          size,
		proofType:     proofType,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (a *Attachment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAttachmentIsNotConstructed
	}
	return nil
}

func (a *Attachment) ID() kernel.UUID           { return a.id }
func (a *Attachment) OrderID() kernel.UUID      { return a.orderID }
func (a *Attachment) UploadedByID() kernel.UUID { return a.uploadedByID }
func (a *Attachment) FileName() string          { return a.fileName }
func (a *Attachment) Path() string              { return a.path }
func (a *Attachment) MimeType() string          { return a.mimeType }
func (a *Attachment) Size() int64               { return a.size }
func (a *Attachment) ProofType() ProofType      { return a.proofType }
func (a *Attachment) Notes() string             { return a.notes }
func (a *Attachment) CreatedAt() time.Time      { return a.createdAt }

// UpdateNotes replaces the notes. Only the uploader or an admin may do so.
func (a *Attachment) UpdateNotes(actor kernel.Actor, notes string) error {
	if !actor.IsAdmin() && !actor.Is(a.uploadedByID) {
		return errs.NewForbiddenError("only the uploader or an admin may edit attachment notes")
	}
	a.notes = strings.TrimSpace(notes)
	return nil
}
