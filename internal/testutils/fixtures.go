package testutils

import (
	"testing/fstest"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
)

// TestPlayerID is the default player for inventory fixtures
const TestPlayerID = "player-test-001"

// TestCatalogJSON is a small catalog covering every category
const TestCatalogJSON = `{
  "audio": {
    "ambiance": [["wind.ogg", false], ["cave.ogg", true]],
    "effect": [["fire.wav", true], ["sword.wav", false]],
    "music": [["theme.ogg", true]],
    "voice": [["hello.ogg", false]]
  }
}`

// CreateTestClipFS returns a file system with a file for every sound in TestCatalogJSON
// under the given sound directory, except sword.wav.
func CreateTestClipFS(soundDir string) fstest.MapFS {
	file := func(size int) *fstest.MapFile {
		return &fstest.MapFile{Data: make([]byte, size)}
	}
	return fstest.MapFS{
		soundDir + "/Ambiance/wind.ogg": file(2048),
		soundDir + "/Ambiance/cave.ogg": file(4096),
		soundDir + "/Effect/fire.wav":   file(512),
		soundDir + "/Music/theme.ogg":   file(1 << 20),
		soundDir + "/Voice/hello.ogg":   file(1024),
	}
}

// CreateTestInventory returns a small inventory snapshot
func CreateTestInventory() []entities.InventoryItem {
	return []entities.InventoryItem{
		{Name: "potion_healing", Amount: 3},
		{Name: "rope_hempen", Amount: 1},
		{Name: "torch", Amount: 10},
	}
}
