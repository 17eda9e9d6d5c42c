package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/handlers/gamekit/v1alpha1"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/audio"
	audiomock "github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/audio/mock"
)

type AudioHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockAudio *audiomock.MockService
	handler   *v1alpha1.AudioHandler
	ctx       context.Context
}

func TestAudioHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AudioHandlerTestSuite))
}

func (s *AudioHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAudio = audiomock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewAudioHandler(&v1alpha1.AudioHandlerConfig{
		AudioService: s.mockAudio,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *AudioHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AudioHandlerTestSuite) TestNewAudioHandler_RequiresService() {
	_, err := v1alpha1.NewAudioHandler(&v1alpha1.AudioHandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewAudioHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *AudioHandlerTestSuite) TestChangeVolume() {
	s.mockAudio.EXPECT().
		ChangeVolume(s.ctx, entities.VolumeChannel("music"), float32(-3)).
		Return(nil)

	resp, err := s.handler.ChangeVolume(s.ctx, &v1alpha1.ChangeVolumeRequest{Channel: "music", Level: -3})
	s.NoError(err)
	s.NotNil(resp)
}

func (s *AudioHandlerTestSuite) TestChangeVolume_Errors() {
	_, err := s.handler.ChangeVolume(s.ctx, &v1alpha1.ChangeVolumeRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	s.mockAudio.EXPECT().
		ChangeVolume(s.ctx, entities.VolumeChannel("sfx"), float32(0)).
		Return(errors.InvalidArgumentf("no mixer group named sfx").WithMeta("channel", "sfx"))

	_, err = s.handler.ChangeVolume(s.ctx, &v1alpha1.ChangeVolumeRequest{Channel: "sfx"})
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("sfx", errors.GetMeta(errors.FromGRPCError(err))["channel"])
}

func (s *AudioHandlerTestSuite) TestSeeVolume() {
	s.mockAudio.EXPECT().
		SeeVolume(s.ctx, entities.VolumeChannel("master")).
		Return(float32(-10), nil)

	resp, err := s.handler.SeeVolume(s.ctx, &v1alpha1.SeeVolumeRequest{Channel: "master"})
	s.Require().NoError(err)
	s.Equal("master", resp.Channel)
	s.Equal(float32(-10), resp.Level)
}

func (s *AudioHandlerTestSuite) TestFindSound() {
	s.mockAudio.EXPECT().
		FindSound(s.ctx, entities.SoundCategoryEffect, "fire.wav").
		Return(true, nil)

	resp, err := s.handler.FindSound(s.ctx, &v1alpha1.FindSoundRequest{Category: "Effect", Name: "fire.wav"})
	s.Require().NoError(err)
	s.True(resp.Found)
}

func (s *AudioHandlerTestSuite) TestFindSound_BadCategory() {
	testCases := []struct {
		name     string
		category string
	}{
		{"empty", ""},
		{"unknown", "sfx"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.FindSound(s.ctx, &v1alpha1.FindSoundRequest{Category: tc.category, Name: "fire.wav"})
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *AudioHandlerTestSuite) TestAddSound() {
	s.mockAudio.EXPECT().
		AddSound(s.ctx, entities.SoundCategoryMusic, "battle.ogg", true).
		Return(nil)

	resp, err := s.handler.AddSound(s.ctx, &v1alpha1.AddSoundRequest{
		Sound: &v1alpha1.Sound{Category: "music", Name: "battle.ogg", HighPriority: true},
	})
	s.Require().NoError(err)
	s.Equal("music", resp.Sound.Category)
}

func (s *AudioHandlerTestSuite) TestAddSound_Duplicate() {
	s.mockAudio.EXPECT().
		AddSound(s.ctx, entities.SoundCategoryMusic, "theme.ogg", false).
		Return(errors.AlreadyExistsf("music sound theme.ogg already exists"))

	_, err := s.handler.AddSound(s.ctx, &v1alpha1.AddSoundRequest{
		Sound: &v1alpha1.Sound{Category: "music", Name: "theme.ogg"},
	})
	s.Equal(codes.AlreadyExists, status.Code(err))

	_, err = s.handler.AddSound(s.ctx, &v1alpha1.AddSoundRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *AudioHandlerTestSuite) TestUpsertSound() {
	s.mockAudio.EXPECT().
		UpsertSound(s.ctx, entities.SoundCategoryVoice, "hello.ogg", true).
		Return(entities.UpsertUpdated, nil)

	resp, err := s.handler.UpsertSound(s.ctx, &v1alpha1.UpsertSoundRequest{
		Sound: &v1alpha1.Sound{Category: "voice", Name: "hello.ogg", HighPriority: true},
	})
	s.Require().NoError(err)
	s.Equal("updated", resp.Result)
}

func (s *AudioHandlerTestSuite) TestListSounds_AllCategories() {
	for _, category := range entities.SoundCategories {
		var entries []entities.SoundEntry
		if category == entities.SoundCategoryMusic {
			entries = []entities.SoundEntry{{Category: category, Name: "theme.ogg", HighPriority: true}}
		}
		s.mockAudio.EXPECT().ListSounds(s.ctx, category).Return(entries, nil)
	}

	resp, err := s.handler.ListSounds(s.ctx, &v1alpha1.ListSoundsRequest{})
	s.Require().NoError(err)
	s.Equal([]*v1alpha1.Sound{{Category: "music", Name: "theme.ogg", HighPriority: true}}, resp.Sounds)
}

func (s *AudioHandlerTestSuite) TestLoadSound() {
	loadedAt := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	s.mockAudio.EXPECT().
		LoadSound(s.ctx, entities.SoundCategoryMusic, "theme.ogg").
		Return(&entities.Clip{
			Category: entities.SoundCategoryMusic,
			Name:     "theme.ogg",
			Path:     "StreamingAssets/Audio/Music/theme.ogg",
			Size:     2048,
			LoadedAt: loadedAt,
		}, nil)

	resp, err := s.handler.LoadSound(s.ctx, &v1alpha1.LoadSoundRequest{Category: "music", Name: "theme.ogg"})
	s.Require().NoError(err)
	s.Equal("StreamingAssets/Audio/Music/theme.ogg", resp.Clip.Path)
	s.Equal(loadedAt.Unix(), resp.Clip.LoadedAt)
}

func (s *AudioHandlerTestSuite) TestLoadSound_NotFound() {
	s.mockAudio.EXPECT().
		LoadSound(s.ctx, entities.SoundCategoryEffect, "sword.wav").
		Return(nil, errors.NotFoundf("clip file missing"))

	_, err := s.handler.LoadSound(s.ctx, &v1alpha1.LoadSoundRequest{Category: "effect", Name: "sword.wav"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *AudioHandlerTestSuite) TestPlayAndStop() {
	s.mockAudio.EXPECT().
		Play(s.ctx, &audio.PlayInput{Category: entities.SoundCategoryAmbiance, Name: "wind.ogg", Loop: true}).
		Return(&audio.PlayOutput{Playback: &entities.Playback{
			ID:   "playback_1",
			Clip: &entities.Clip{Category: entities.SoundCategoryAmbiance, Name: "wind.ogg"},
			Loop: true,
		}}, nil)

	resp, err := s.handler.Play(s.ctx, &v1alpha1.PlayRequest{Category: "ambiance", Name: "wind.ogg", Loop: true})
	s.Require().NoError(err)
	s.Equal("playback_1", resp.PlaybackID)

	s.mockAudio.EXPECT().Stop(s.ctx, "playback_1").Return(&audio.StopOutput{}, nil)
	_, err = s.handler.Stop(s.ctx, &v1alpha1.StopRequest{PlaybackID: "playback_1"})
	s.NoError(err)

	_, err = s.handler.Stop(s.ctx, &v1alpha1.StopRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	s.mockAudio.EXPECT().StopAll(s.ctx).Return(2)
	all, err := s.handler.StopAll(s.ctx, &v1alpha1.StopAllRequest{})
	s.Require().NoError(err)
	s.Equal(int32(2), all.Stopped)
}

func (s *AudioHandlerTestSuite) TestReloadCatalog() {
	catalog := entities.NewCatalog()
	s.Require().NoError(catalog.Add(entities.SoundCategoryMusic, "theme.ogg", true))

	s.mockAudio.EXPECT().LoadListFromFile(s.ctx, "").Return(nil)
	s.mockAudio.EXPECT().Catalog(s.ctx).Return(catalog)

	resp, err := s.handler.ReloadCatalog(s.ctx, &v1alpha1.ReloadCatalogRequest{})
	s.Require().NoError(err)
	s.Equal(int32(1), resp.Sounds)

	s.mockAudio.EXPECT().LoadListFromFile(s.ctx, "gone.json").Return(errors.NotFound("file does not exist"))
	_, err = s.handler.ReloadCatalog(s.ctx, &v1alpha1.ReloadCatalogRequest{Path: "gone.json"})
	s.Equal(codes.NotFound, status.Code(err))
}
