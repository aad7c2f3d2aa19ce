package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"questbuilder/internal/app/server/api/http/middleware/auth"
	"questbuilder/internal/domain/asset"
)

type Handler struct {
	service    asset.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service asset.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.blobOp(), h.blob)
	huma.Register(api, h.deleteManyOp(), h.deleteMany)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	assets, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: assets}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*assetOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	a, err := h.service.Find(ctx, userID, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &assetOutput{Body: *a}, nil
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*assetOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	up := asset.Upload{
		ID:       formValue(&input.RawBody, "id"),
		Name:     formValue(&input.RawBody, "name"),
		MimeType: formValue(&input.RawBody, "mimeType"),
		Width:    formValue(&input.RawBody, "width"),
		Height:   formValue(&input.RawBody, "height"),
	}

	if files := input.RawBody.File["file"]; len(files) > 0 {
		fh := files[0]
		data, err := readFile(fh)
		if err != nil {
			return nil, huma.Error400BadRequest("unreadable file part")
		}
		up.Filename = fh.Filename
		up.FileMime = fh.Header.Get("Content-Type")
		up.Data = data
	}

	a, err := h.service.Store(ctx, userID, up)
	if err != nil {
		return nil, mapError(err)
	}

	return &assetOutput{Body: *a}, nil
}

func (h *Handler) blob(ctx context.Context, input *findInput) (*blobOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	b, err := h.service.Blob(ctx, userID, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &blobOutput{
		ContentType:        b.MimeType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", b.Name),
		Body:               b.Data,
	}, nil
}

func (h *Handler) deleteMany(ctx context.Context, input *bulkDeleteInput) (*bulkDeleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	deleted, err := h.service.DeleteMany(ctx, userID, input.Body.IDs)
	if err != nil {
		return nil, err
	}

	return &bulkDeleteOutput{Body: assetsDeletedResponse{Success: true, Deleted: deleted}}, nil
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, asset.ErrNotFound):
		return huma.Error404NotFound("asset not found")
	case errors.Is(err, asset.ErrMissingFile),
		errors.Is(err, asset.ErrMissingMetadata),
		errors.Is(err, asset.ErrInvalidDimensions):
		return huma.Error400BadRequest(err.Error())
	default:
		return err
	}
}
