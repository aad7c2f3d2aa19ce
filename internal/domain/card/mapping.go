package card

// fieldColumns is the wire-to-storage name table for every card field a
// client may write. id and user_id are deliberately absent: the id comes
// from the URL (or is generated) and ownership is never payload-controlled.
var fieldColumns = map[string]string{
	"templateId":             "template_id",
	"status":                 "status",
	"name":                   "name",
	"nameLower":              "name_lower",
	"title":                  "title",
	"description":            "description",
	"imageAssetId":           "image_asset_id",
	"imageAssetName":         "image_asset_name",
	"imageScale":             "image_scale",
	"imageOffsetX":           "image_offset_x",
	"imageOffsetY":           "image_offset_y",
	"imageOriginalWidth":     "image_original_width",
	"imageOriginalHeight":    "image_original_height",
	"heroAttackDice":         "hero_attack_dice",
	"heroDefendDice":         "hero_defend_dice",
	"heroBodyPoints":         "hero_body_points",
	"heroMindPoints":         "hero_mind_points",
	"monsterMovementSquares": "monster_movement_squares",
	"monsterAttackDice":      "monster_attack_dice",
	"monsterDefendDice":      "monster_defend_dice",
	"monsterBodyPoints":      "monster_body_points",
	"monsterMindPoints":      "monster_mind_points",
	"monsterIconAssetId":     "monster_icon_asset_id",
	"monsterIconAssetName":   "monster_icon_asset_name",
	"thumbnailDataUrl":       "thumbnail_data_url",
	"schemaVersion":          "schema_version",
	"createdAt":              "created_at",
}

// payload helpers. JSON numbers arrive as float64; SQLite's column affinity
// turns whole floats back into integers on write.

func strField(p map[string]any, key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func optStr(p map[string]any, key string) *string {
	if v, ok := p[key].(string); ok {
		return &v
	}
	return nil
}

func optFloat(p map[string]any, key string) *float64 {
	if v, ok := p[key].(float64); ok {
		return &v
	}
	return nil
}

func optInt(p map[string]any, key string) *int64 {
	if v, ok := p[key].(float64); ok {
		n := int64(v)
		return &n
	}
	return nil
}

// intField returns def when the key is absent, null or zero, matching the
// "payload value or default" semantics of the create path.
func intField(p map[string]any, key string, def int64) int64 {
	if v, ok := p[key].(float64); ok && v != 0 {
		return int64(v)
	}
	return def
}
