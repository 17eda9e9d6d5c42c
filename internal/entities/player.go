package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypePlayer is the core.Entity type for players
const EntityTypePlayer = "player"

// Player owns an inventory and is the source of inventory events
type Player struct {
	ID string
}

// GetID returns the player ID
func (p *Player) GetID() string {
	return p.ID
}

// GetType returns the entity type
func (p *Player) GetType() string {
	return EntityTypePlayer
}

var _ core.Entity = (*Player)(nil)
