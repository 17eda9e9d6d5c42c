package entities

import (
	"strings"
	"time"
)

// SoundCategory groups catalog entries. Each category has its own table.
type SoundCategory string

// Sound categories
const (
	SoundCategoryAmbiance SoundCategory = "ambiance"
	SoundCategoryEffect   SoundCategory = "effect"
	SoundCategoryMusic    SoundCategory = "music"
	SoundCategoryVoice    SoundCategory = "voice"
)

// SoundCategories lists every category in document order
var SoundCategories = []SoundCategory{
	SoundCategoryAmbiance,
	SoundCategoryEffect,
	SoundCategoryMusic,
	SoundCategoryVoice,
}

// ParseSoundCategory matches a category name case-insensitively
func ParseSoundCategory(name string) (SoundCategory, bool) {
	category := SoundCategory(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range SoundCategories {
		if c == category {
			return c, true
		}
	}
	return "", false
}

// Dir returns the directory under the sound root holding this category's files
func (c SoundCategory) Dir() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// SoundEntry is one catalog row
type SoundEntry struct {
	Category     SoundCategory
	Name         string
	HighPriority bool
}

// VolumeChannel names a mixer group
type VolumeChannel string

// Volume channels. VolumeReset is a command rather than a group.
const (
	VolumeMaster   VolumeChannel = "master"
	VolumeAmbiance VolumeChannel = "ambiance"
	VolumeEffect   VolumeChannel = "effect"
	VolumeMusic    VolumeChannel = "music"
	VolumeVoice    VolumeChannel = "voice"
	VolumeReset    VolumeChannel = "reset"
)

var volumeParams = map[VolumeChannel]string{
	VolumeMaster:   "MasterVol",
	VolumeAmbiance: "MaxAmbianceVol",
	VolumeEffect:   "MaxEffectVol",
	VolumeMusic:    "MaxMusicVol",
	VolumeVoice:    "MaxVoiceVol",
}

// VolumeChannels lists the readable channels
var VolumeChannels = []VolumeChannel{
	VolumeMaster,
	VolumeAmbiance,
	VolumeEffect,
	VolumeMusic,
	VolumeVoice,
}

// ParseVolumeChannel matches a channel name case-insensitively, including reset
func ParseVolumeChannel(name string) (VolumeChannel, bool) {
	channel := VolumeChannel(strings.ToLower(strings.TrimSpace(name)))
	if channel == VolumeReset {
		return channel, true
	}
	_, ok := volumeParams[channel]
	return channel, ok
}

// MixerParam returns the exposed mixer parameter for the channel
func (v VolumeChannel) MixerParam() (string, bool) {
	param, ok := volumeParams[v]
	return param, ok
}

// Clip is a sound file resolved from the catalog
type Clip struct {
	Category     SoundCategory
	Name         string
	Path         string
	Size         int64
	HighPriority bool
	LoadedAt     time.Time
}

// Playback tracks one started clip
type Playback struct {
	ID        string
	Clip      *Clip
	Loop      bool
	StartedAt time.Time
}
