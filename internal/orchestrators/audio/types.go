package audio

import (
	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
)

// PlayInput defines the request for starting a clip
type PlayInput struct {
	Category entities.SoundCategory
	Name     string
	Loop     bool
}

// PlayOutput defines the response for starting a clip
type PlayOutput struct {
	Playback *entities.Playback
}

// StopOutput defines the response for stopping a clip
type StopOutput struct {
	Playback *entities.Playback
}
