package quest

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) saveOp() huma.Operation {
	return huma.Operation{
		OperationID:   "maps-save",
		Method:        http.MethodPost,
		Path:          "/savemap",
		Summary:       "Save the current map",
		Description:   "Upserts on (title, author) within the caller's maps: 201 when created, 204 when overwritten.",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"maps"},
		Security:      []map[string][]string{{"cookie": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) cardsOp() huma.Operation {
	return huma.Operation{
		OperationID: "maps-cards-list",
		Method:      http.MethodGet,
		Path:        "/api/quests/{id}/cards",
		Summary:     "List cards linked to a map",
		Tags:        []string{"maps"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) attachOp() huma.Operation {
	return huma.Operation{
		OperationID:   "maps-cards-attach",
		Method:        http.MethodPost,
		Path:          "/api/quests/{id}/cards",
		Summary:       "Link a card to a map",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"maps"},
		Security:      []map[string][]string{{"cookie": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) detachOp() huma.Operation {
	return huma.Operation{
		OperationID: "maps-cards-detach",
		Method:      http.MethodDelete,
		Path:        "/api/quests/{id}/cards/{cardId}",
		Summary:     "Unlink a card from a map",
		Tags:        []string{"maps"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}
