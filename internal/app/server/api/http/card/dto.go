package card

import (
	"questbuilder/internal/domain/card"
)

type listInput struct {
	TemplateID string `query:"templateId" doc:"Filter by template"`
	Status     string `query:"status" doc:"Filter by status"`
	Search     string `query:"search" doc:"Case-insensitive substring of the name"`
}

type listOutput struct {
	Body []card.Card
}

// createInput keeps the raw bytes: partial-update semantics depend on which
// keys the client actually sent, which a struct decode would erase. The
// field stays untagged so huma hands the body over without schema checks.
type createInput struct {
	RawBody []byte
}

type findInput struct {
	ID string `path:"id" doc:"Card id"`
}

type updateInput struct {
	ID      string `path:"id" doc:"Card id"`
	RawBody []byte
}

type cardOutput struct {
	Body card.Card
}

// Body type names carry the resource name: huma registers every body
// schema in one shared registry keyed by bare type name.
type deleteOutput struct {
	Body cardDeletedResponse
}

type cardDeletedResponse struct {
	Success bool `json:"success"`
}

type bulkDeleteInput struct {
	Body deleteCardsRequest
}

type deleteCardsRequest struct {
	IDs []string `json:"ids" doc:"Card ids to delete"`
}

type bulkDeleteOutput struct {
	Body cardsDeletedResponse
}

type cardsDeletedResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}
