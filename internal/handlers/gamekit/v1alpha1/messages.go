package v1alpha1

// Sound is one catalog entry
type Sound struct {
	Category     string `json:"category"`
	Name         string `json:"name"`
	HighPriority bool   `json:"high_priority"`
}

// Clip is a resolved sound file
type Clip struct {
	Category     string `json:"category"`
	Name         string `json:"name"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	HighPriority bool   `json:"high_priority"`
	LoadedAt     int64  `json:"loaded_at"`
}

// Item is an inventory stack
type Item struct {
	Name   string `json:"name"`
	Amount int32  `json:"amount"`
}

type ChangeVolumeRequest struct {
	Channel string  `json:"channel"`
	Level   float32 `json:"level"`
}

type ChangeVolumeResponse struct{}

type SeeVolumeRequest struct {
	Channel string `json:"channel"`
}

type SeeVolumeResponse struct {
	Channel string  `json:"channel"`
	Level   float32 `json:"level"`
}

type FindSoundRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

type FindSoundResponse struct {
	Found bool `json:"found"`
}

type AddSoundRequest struct {
	Sound *Sound `json:"sound"`
}

type AddSoundResponse struct {
	Sound *Sound `json:"sound"`
}

type UpsertSoundRequest struct {
	Sound *Sound `json:"sound"`
}

type UpsertSoundResponse struct {
	Sound  *Sound `json:"sound"`
	Result string `json:"result"`
}

type RemoveSoundRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

type RemoveSoundResponse struct{}

type ListSoundsRequest struct {
	// Category is optional; empty lists every category
	Category string `json:"category,omitempty"`
}

type ListSoundsResponse struct {
	Sounds []*Sound `json:"sounds"`
}

type LoadSoundRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

type LoadSoundResponse struct {
	Clip *Clip `json:"clip"`
}

type PlayRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Loop     bool   `json:"loop"`
}

type PlayResponse struct {
	PlaybackID string `json:"playback_id"`
	Clip       *Clip  `json:"clip"`
}

type StopRequest struct {
	PlaybackID string `json:"playback_id"`
}

type StopResponse struct{}

type StopAllRequest struct{}

type StopAllResponse struct {
	Stopped int32 `json:"stopped"`
}

type ReloadCatalogRequest struct {
	// Path is optional; empty reloads the configured sound list
	Path string `json:"path,omitempty"`
}

type ReloadCatalogResponse struct {
	Sounds int32 `json:"sounds"`
}

type AddItemRequest struct {
	Item *Item `json:"item"`
}

type AddItemResponse struct {
	Item   *Item  `json:"item"`
	Result string `json:"result"`
}

type RemoveItemRequest struct {
	Item *Item `json:"item"`
}

type RemoveItemResponse struct {
	Item *Item `json:"item"`
}

type ListItemsRequest struct{}

type ListItemsResponse struct {
	Items []*Item `json:"items"`
}

type SaveInventoryRequest struct{}

type SaveInventoryResponse struct {
	Count int32 `json:"count"`
}

type LoadInventoryRequest struct{}

type LoadInventoryResponse struct {
	Items []*Item `json:"items"`
}
