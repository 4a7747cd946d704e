package http

import (
	"mime"
	"net/http"

	"activity-report-service/internal/infrastructure/storage"
	reportuc "activity-report-service/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type AttachmentHandler struct {
	uc    *reportuc.Usecase
	blobs storage.BlobStore
}

func NewAttachmentHandler(uc *reportuc.Usecase, blobs storage.BlobStore) *AttachmentHandler {
	return &AttachmentHandler{uc: uc, blobs: blobs}
}

// Upload accepts a multipart form with a single "file" part.
func (h *AttachmentHandler) Upload(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	defer src.Close()

	att, err := h.uc.UploadAttachment(c.Request().Context(), reportuc.UploadAttachmentInput{
		ReportID:         id,
		OriginalFilename: fh.Filename,
		MimeType:         fh.Header.Get(echo.HeaderContentType),
		Content:          src,
	}, a.ID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, att)
}

func (h *AttachmentHandler) List(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	atts, err := h.uc.ListAttachments(c.Request().Context(), id, a.ID, a.Role)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, atts)
}

func (h *AttachmentHandler) Download(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	att, err := h.uc.GetAttachment(c.Request().Context(), id, a.ID, a.Role)
	if err != nil {
		return writeErr(c, err)
	}
	if att == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "attachment not found"})
	}
	blob, err := h.blobs.Open(c.Request().Context(), att.FilePath)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "attachment not found"})
	}
	defer blob.Close()

	// FormatMediaType quotes or percent-encodes whatever the original
	// filename contains.
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": att.OriginalFilename})
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Stream(http.StatusOK, att.MimeType, blob)
}

func (h *AttachmentHandler) Delete(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	ok, err := h.uc.DeleteAttachment(c.Request().Context(), id, a.ID, a.Role)
	if err != nil {
		return writeErr(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "attachment not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
