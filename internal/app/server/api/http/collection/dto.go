package collection

import (
	"questbuilder/internal/domain/collection"
)

type listOutput struct {
	Body []collection.Collection
}

// RawBody keeps the payload bytes intact so the partial-update semantics
// can key off which fields the client actually sent.
type createInput struct {
	RawBody []byte
}

type findInput struct {
	ID string `path:"id" doc:"Collection id"`
}

type updateInput struct {
	ID      string `path:"id" doc:"Collection id"`
	RawBody []byte
}

type collectionOutput struct {
	Body collection.Collection
}

type deleteOutput struct {
	Body collectionDeletedResponse
}

type collectionDeletedResponse struct {
	Success bool `json:"success"`
}
