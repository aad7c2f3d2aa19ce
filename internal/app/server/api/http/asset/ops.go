package asset

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "assets-list",
		Method:      http.MethodGet,
		Path:        "/api/assets",
		Summary:     "List the caller's assets",
		Description: "Metadata only; the image bytes come from the blob endpoint.",
		Tags:        []string{"assets"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "assets-find",
		Method:      http.MethodGet,
		Path:        "/api/assets/{id}",
		Summary:     "Get one asset's metadata",
		Tags:        []string{"assets"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID:   "assets-upload",
		Method:        http.MethodPost,
		Path:          "/api/assets",
		Summary:       "Upload an image asset",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"assets"},
		Security:      []map[string][]string{{"cookie": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) blobOp() huma.Operation {
	return huma.Operation{
		OperationID: "assets-blob",
		Method:      http.MethodGet,
		Path:        "/api/assets/{id}/blob",
		Summary:     "Download the original image bytes",
		Tags:        []string{"assets"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteManyOp() huma.Operation {
	return huma.Operation{
		OperationID: "assets-delete-many",
		Method:      http.MethodDelete,
		Path:        "/api/assets",
		Summary:     "Delete several assets",
		Tags:        []string{"assets"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}
