package collection

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"questbuilder/internal/app/server/api/http/middleware/auth"
	"questbuilder/internal/domain/collection"
)

type Handler struct {
	service    collection.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service collection.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	collections, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: collections}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*collectionOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	payload, err := decodePayload(input.RawBody)
	if err != nil {
		return nil, err
	}

	c, err := h.service.Create(ctx, userID, payload)
	if err != nil {
		return nil, mapError(err)
	}

	return &collectionOutput{Body: *c}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*collectionOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	c, err := h.service.Find(ctx, userID, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &collectionOutput{Body: *c}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*collectionOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	payload, err := decodePayload(input.RawBody)
	if err != nil {
		return nil, err
	}

	c, err := h.service.Update(ctx, userID, input.ID, payload)
	if err != nil {
		return nil, mapError(err)
	}

	return &collectionOutput{Body: *c}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &deleteOutput{Body: collectionDeletedResponse{Success: true}}, nil
}

func decodePayload(raw []byte) (map[string]any, error) {
	payload := map[string]any{}
	if len(raw) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, huma.Error400BadRequest("invalid JSON payload")
	}
	return payload, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, collection.ErrNotFound):
		return huma.Error404NotFound("collection not found")
	case errors.Is(err, collection.ErrMissingName):
		return huma.Error400BadRequest(err.Error())
	default:
		return err
	}
}
