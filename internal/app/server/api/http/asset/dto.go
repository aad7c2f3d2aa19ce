package asset

import (
	"mime/multipart"

	"questbuilder/internal/domain/asset"
)

type listOutput struct {
	Body []asset.Asset
}

type findInput struct {
	ID string `path:"id" doc:"Asset id"`
}

type assetOutput struct {
	Body asset.Asset
}

// uploadInput takes the multipart form as-is; the file part plus the
// metadata fields the card app sends alongside it.
type uploadInput struct {
	RawBody multipart.Form
}

type blobOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type bulkDeleteInput struct {
	Body deleteAssetsRequest
}

type deleteAssetsRequest struct {
	IDs []string `json:"ids" doc:"Asset ids to delete"`
}

type bulkDeleteOutput struct {
	Body assetsDeletedResponse
}

type assetsDeletedResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}
