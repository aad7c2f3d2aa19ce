package card

// Card is one saved card. Only id, template, status and the name pair are
// guaranteed; everything else depends on which template the card uses, so
// those fields are pointers and serialize as null when unset.
type Card struct {
	ID            string `json:"id"`
	TemplateID    string `json:"templateId"`
	Status        string `json:"status"`
	Name          string `json:"name"`
	NameLower     string `json:"nameLower"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
	SchemaVersion int64  `json:"schemaVersion"`

	Title       *string `json:"title"`
	Description *string `json:"description"`

	ImageAssetID        *string  `json:"imageAssetId"`
	ImageAssetName      *string  `json:"imageAssetName"`
	ImageScale          *float64 `json:"imageScale"`
	ImageOffsetX        *float64 `json:"imageOffsetX"`
	ImageOffsetY        *float64 `json:"imageOffsetY"`
	ImageOriginalWidth  *float64 `json:"imageOriginalWidth"`
	ImageOriginalHeight *float64 `json:"imageOriginalHeight"`

	HeroAttackDice *int64 `json:"heroAttackDice"`
	HeroDefendDice *int64 `json:"heroDefendDice"`
	HeroBodyPoints *int64 `json:"heroBodyPoints"`
	HeroMindPoints *int64 `json:"heroMindPoints"`

	MonsterMovementSquares *int64  `json:"monsterMovementSquares"`
	MonsterAttackDice      *int64  `json:"monsterAttackDice"`
	MonsterDefendDice      *int64  `json:"monsterDefendDice"`
	MonsterBodyPoints      *int64  `json:"monsterBodyPoints"`
	MonsterMindPoints      *int64  `json:"monsterMindPoints"`
	MonsterIconAssetID     *string `json:"monsterIconAssetId"`
	MonsterIconAssetName   *string `json:"monsterIconAssetName"`

	ThumbnailDataURL *string `json:"thumbnailDataUrl"`
}

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	TemplateID string
	Status     string
	Search     string // case-insensitive substring match on the name
}
