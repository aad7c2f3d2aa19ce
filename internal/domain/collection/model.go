package collection

// Collection is an ordered set of card ids under a name. The id list is
// stored as JSON text and is not referentially enforced; cards may be
// deleted out from under it.
type Collection struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	CardIDs       []string `json:"cardIds"`
	CreatedAt     int64    `json:"createdAt"`
	UpdatedAt     int64    `json:"updatedAt"`
	SchemaVersion int64    `json:"schemaVersion"`
}
