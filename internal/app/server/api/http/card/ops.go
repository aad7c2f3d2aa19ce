package card

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "cards-list",
		Method:      http.MethodGet,
		Path:        "/api/cards",
		Summary:     "List the caller's cards",
		Tags:        []string{"cards"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "cards-create",
		Method:        http.MethodPost,
		Path:          "/api/cards",
		Summary:       "Create a card",
		Description:   "Creates or overwrites the card with the given id; retries are safe.",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"cards"},
		Security:      []map[string][]string{{"cookie": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "cards-find",
		Method:      http.MethodGet,
		Path:        "/api/cards/{id}",
		Summary:     "Get one card",
		Tags:        []string{"cards"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "cards-update",
		Method:      http.MethodPut,
		Path:        "/api/cards/{id}",
		Summary:     "Partially update a card",
		Description: "Only the keys present in the payload are written; updatedAt always refreshes.",
		Tags:        []string{"cards"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "cards-delete",
		Method:      http.MethodDelete,
		Path:        "/api/cards/{id}",
		Summary:     "Delete a card",
		Tags:        []string{"cards"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteManyOp() huma.Operation {
	return huma.Operation{
		OperationID: "cards-delete-many",
		Method:      http.MethodDelete,
		Path:        "/api/cards",
		Summary:     "Delete several cards",
		Tags:        []string{"cards"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}
