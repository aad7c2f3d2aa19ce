package collection

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "collections-list",
		Method:      http.MethodGet,
		Path:        "/api/collections",
		Summary:     "List the caller's collections",
		Tags:        []string{"collections"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "collections-create",
		Method:        http.MethodPost,
		Path:          "/api/collections",
		Summary:       "Create a collection",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"collections"},
		Security:      []map[string][]string{{"cookie": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "collections-find",
		Method:      http.MethodGet,
		Path:        "/api/collections/{id}",
		Summary:     "Get one collection",
		Tags:        []string{"collections"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "collections-update",
		Method:      http.MethodPut,
		Path:        "/api/collections/{id}",
		Summary:     "Partially update a collection",
		Tags:        []string{"collections"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "collections-delete",
		Method:      http.MethodDelete,
		Path:        "/api/collections/{id}",
		Summary:     "Delete a collection",
		Tags:        []string{"collections"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}
