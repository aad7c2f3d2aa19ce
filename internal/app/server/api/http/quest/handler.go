package quest

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"questbuilder/internal/app/server/api/http/middleware/auth"
	"questbuilder/internal/domain/quest"
)

type Handler struct {
	service    quest.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service quest.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.saveOp(), h.save)
	huma.Register(api, h.cardsOp(), h.cards)
	huma.Register(api, h.attachOp(), h.attach)
	huma.Register(api, h.detachOp(), h.detach)
}

func (h *Handler) save(ctx context.Context, input *saveInput) (*saveOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	created, err := h.service.Save(ctx, userID, input.Body)
	if err != nil {
		return nil, mapError(err)
	}

	status := http.StatusNoContent
	if created {
		status = http.StatusCreated
	}

	return &saveOutput{
		Status: status,
		Body:   questSuccessResponse{Success: true},
	}, nil
}

func (h *Handler) cards(ctx context.Context, input *cardsInput) (*cardsOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	ids, err := h.service.Cards(ctx, userID, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &cardsOutput{Body: ids}, nil
}

func (h *Handler) attach(ctx context.Context, input *attachInput) (*okOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	if err := h.service.AttachCard(ctx, userID, input.ID, input.Body.CardID); err != nil {
		return nil, mapError(err)
	}

	return &okOutput{Body: questSuccessResponse{Success: true}}, nil
}

func (h *Handler) detach(ctx context.Context, input *detachInput) (*okOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	if err := h.service.DetachCard(ctx, userID, input.ID, input.CardID); err != nil {
		return nil, mapError(err)
	}

	return &okOutput{Body: questSuccessResponse{Success: true}}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, quest.ErrNotFound):
		return huma.Error404NotFound("map not found")
	case errors.Is(err, quest.ErrMissingTitle):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, quest.ErrUnknownCard):
		return huma.Error400BadRequest(err.Error())
	default:
		return err
	}
}
