package quest

import (
	"questbuilder/internal/domain/quest"
)

type saveInput struct {
	Body quest.SaveInput
}

// saveOutput reports 201 for a fresh map and 204 for an overwrite; the
// editor script keys off the status alone.
type saveOutput struct {
	Status int
	Body   questSuccessResponse
}

type questSuccessResponse struct {
	Success bool `json:"success"`
}

type cardsInput struct {
	ID int64 `path:"id" doc:"Map id"`
}

type cardsOutput struct {
	Body []string
}

type attachInput struct {
	ID   int64 `path:"id" doc:"Map id"`
	Body attachRequest
}

type attachRequest struct {
	CardID string `json:"cardId" doc:"Card to attach" minLength:"1"`
}

type detachInput struct {
	ID     int64  `path:"id" doc:"Map id"`
	CardID string `path:"cardId" doc:"Card to detach"`
}

type okOutput struct {
	Body questSuccessResponse
}
