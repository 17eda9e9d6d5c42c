package audio

import (
	"bytes"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

const catalogRoot = "audio"

// ParseCatalog reads a sound list document:
//
//	{"audio": {"ambiance": [["wind.ogg", false]], "effect": [...], "music": [...], "voice": [...]}}
//
// A missing category array is empty. The priority flag is read leniently, so
// "true" and non-zero numbers count as true. Nothing is returned unless every
// entry is valid.
func ParseCatalog(data []byte) (*entities.Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.InvalidArgument("json file is empty")
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.InvalidArgument("json file is not valid json")
	}

	root := gjson.GetBytes(data, catalogRoot)
	if !root.IsObject() {
		return nil, errors.InvalidArgumentf("json file has no %q object", catalogRoot)
	}

	catalog := entities.NewCatalog()
	for _, category := range entities.SoundCategories {
		list := root.Get(string(category))
		if !list.Exists() || list.Type == gjson.Null {
			continue
		}
		if !list.IsArray() {
			return nil, errors.InvalidArgumentf("%s must be an array", category).
				WithMeta("category", string(category))
		}

		for index, entry := range list.Array() {
			name, priority, err := parseEntry(category, index, entry)
			if err != nil {
				return nil, err
			}
			if err := catalog.Add(category, name, priority); err != nil {
				return nil, errors.Wrapf(err, "%s entry %d", category, index)
			}
		}
	}

	return catalog, nil
}

func parseEntry(category entities.SoundCategory, index int, entry gjson.Result) (string, bool, error) {
	invalid := func(reason string) error {
		return errors.InvalidArgumentf("%s entry %d %s", category, index, reason).
			WithMeta("category", string(category)).
			WithMeta("index", index)
	}

	if !entry.IsArray() {
		return "", false, invalid("is not a [name, priority] pair")
	}
	fields := entry.Array()
	if len(fields) == 0 {
		return "", false, invalid("is empty")
	}
	if fields[0].Type != gjson.String || len(bytes.TrimSpace([]byte(fields[0].Str))) == 0 {
		return "", false, invalid("has no sound name")
	}

	priority := false
	if len(fields) > 1 {
		priority = fields[1].Bool()
	}
	return fields[0].Str, priority, nil
}

// MarshalCatalog writes the catalog back in the document shape ParseCatalog reads.
// Entries within a category are sorted by name.
func MarshalCatalog(catalog *entities.Catalog) ([]byte, error) {
	if catalog == nil {
		return nil, errors.InvalidArgument("catalog cannot be nil")
	}

	doc := []byte(`{"audio":{}}`)
	for _, category := range entities.SoundCategories {
		entries, err := catalog.Entries(category)
		if err != nil {
			return nil, err
		}

		rows := make([][]any, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []any{e.Name, e.HighPriority})
		}

		doc, err = sjson.SetBytes(doc, catalogRoot+"."+string(category), rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to write %s list", category)
		}
	}

	return doc, nil
}
