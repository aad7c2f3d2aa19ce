package card

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"questbuilder/internal/app/server/api/http/middleware/auth"
	"questbuilder/internal/domain/card"
)

type Handler struct {
	service    card.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service card.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
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
	huma.Register(api, h.deleteManyOp(), h.deleteMany)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	cards, err := h.service.List(ctx, userID, card.Filter{
		TemplateID: input.TemplateID,
		Status:     input.Status,
		Search:     input.Search,
	})
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: cards}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*cardOutput, error) {
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

	return &cardOutput{Body: *c}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*cardOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	c, err := h.service.Find(ctx, userID, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &cardOutput{Body: *c}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*cardOutput, error) {
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

	return &cardOutput{Body: *c}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &deleteOutput{Body: cardDeletedResponse{Success: true}}, nil
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

	return &bulkDeleteOutput{Body: cardsDeletedResponse{Success: true, Deleted: deleted}}, nil
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
	case errors.Is(err, card.ErrNotFound):
		return huma.Error404NotFound("card not found")
	case errors.Is(err, card.ErrMissingFields):
		return huma.Error400BadRequest(err.Error())
	default:
		return err
	}
}
