package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *entities.Catalog
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = entities.NewCatalog()
}

func (s *CatalogTestSuite) TestAddAndFind() {
	s.Require().NoError(s.catalog.Add(entities.SoundCategoryEffect, "fire.wav", true))

	found, err := s.catalog.Find(entities.SoundCategoryEffect, "fire.wav")
	s.NoError(err)
	s.True(found)

	found, err = s.catalog.Find(entities.SoundCategoryMusic, "fire.wav")
	s.NoError(err)
	s.False(found, "tables are independent")

	entry, err := s.catalog.Get(entities.SoundCategoryEffect, "fire.wav")
	s.NoError(err)
	s.True(entry.HighPriority)
}

func (s *CatalogTestSuite) TestAddErrors() {
	testCases := []struct {
		name     string
		category entities.SoundCategory
		sound    string
		check    func(error) bool
	}{
		{"unknown category", entities.SoundCategory("sfx"), "fire.wav", errors.IsInvalidArgument},
		{"empty name", entities.SoundCategoryEffect, " ", errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.catalog.Add(tc.category, tc.sound, false)
			s.Error(err)
			s.True(tc.check(err))
		})
	}
}

func (s *CatalogTestSuite) TestDuplicateAddIsRejected() {
	s.Require().NoError(s.catalog.Add(entities.SoundCategoryVoice, "hello.ogg", false))

	err := s.catalog.Add(entities.SoundCategoryVoice, "hello.ogg", true)
	s.True(errors.IsAlreadyExists(err))

	entry, err := s.catalog.Get(entities.SoundCategoryVoice, "hello.ogg")
	s.Require().NoError(err)
	s.False(entry.HighPriority, "rejected add must not overwrite")
}

func (s *CatalogTestSuite) TestUpsert() {
	result, err := s.catalog.Upsert(entities.SoundCategoryMusic, "theme.ogg", false)
	s.NoError(err)
	s.Equal(entities.UpsertInserted, result)

	result, err = s.catalog.Upsert(entities.SoundCategoryMusic, "theme.ogg", true)
	s.NoError(err)
	s.Equal(entities.UpsertUpdated, result)
	s.Equal("updated", result.String())

	entry, err := s.catalog.Get(entities.SoundCategoryMusic, "theme.ogg")
	s.NoError(err)
	s.True(entry.HighPriority)
}

func (s *CatalogTestSuite) TestFindUnknownCategory() {
	_, err := s.catalog.Find(entities.SoundCategory("nope"), "x")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestGetAndRemoveMissing() {
	_, err := s.catalog.Get(entities.SoundCategoryAmbiance, "wind.ogg")
	s.True(errors.IsNotFound(err))
	s.True(errors.IsNotFound(s.catalog.Remove(entities.SoundCategoryAmbiance, "wind.ogg")))
}

func (s *CatalogTestSuite) TestEntriesSortedAndPriority() {
	s.Require().NoError(s.catalog.Add(entities.SoundCategoryEffect, "b.wav", false))
	s.Require().NoError(s.catalog.Add(entities.SoundCategoryEffect, "a.wav", true))
	s.Require().NoError(s.catalog.Add(entities.SoundCategoryMusic, "m.ogg", true))

	entries, err := s.catalog.Entries(entities.SoundCategoryEffect)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("a.wav", entries[0].Name)
	s.Equal("b.wav", entries[1].Name)

	priority := s.catalog.Priority()
	s.Require().Len(priority, 2)
	s.Equal(entities.SoundCategoryEffect, priority[0].Category)
	s.Equal(entities.SoundCategoryMusic, priority[1].Category)

	s.Equal(3, s.catalog.Len(""))
	s.Equal(2, s.catalog.Len(entities.SoundCategoryEffect))
}

func (s *CatalogTestSuite) TestCloneIsIndependent() {
	s.Require().NoError(s.catalog.Add(entities.SoundCategoryEffect, "a.wav", false))
	clone := s.catalog.Clone()
	s.True(clone.Equal(s.catalog))

	s.Require().NoError(clone.Remove(entities.SoundCategoryEffect, "a.wav"))
	s.False(clone.Equal(s.catalog))
	s.Equal(1, s.catalog.Len(entities.SoundCategoryEffect))
}

func (s *CatalogTestSuite) TestParseCategoryAndDir() {
	category, ok := entities.ParseSoundCategory("  AMBIANCE ")
	s.True(ok)
	s.Equal(entities.SoundCategoryAmbiance, category)
	s.Equal("Ambiance", category.Dir())

	_, ok = entities.ParseSoundCategory("footsteps")
	s.False(ok)
}

func (s *CatalogTestSuite) TestVolumeChannels() {
	testCases := []struct {
		input string
		param string
	}{
		{"Master", "MasterVol"},
		{"ambiance", "MaxAmbianceVol"},
		{"EFFECT", "MaxEffectVol"},
		{"music", "MaxMusicVol"},
		{"voice", "MaxVoiceVol"},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			channel, ok := entities.ParseVolumeChannel(tc.input)
			s.Require().True(ok)
			param, ok := channel.MixerParam()
			s.True(ok)
			s.Equal(tc.param, param)
		})
	}

	reset, ok := entities.ParseVolumeChannel("Reset")
	s.True(ok)
	_, ok = reset.MixerParam()
	s.False(ok)

	_, ok = entities.ParseVolumeChannel("bass")
	s.False(ok)
}

func TestCatalog_DuplicateAddIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		catalog := entities.NewCatalog()
		category := rapid.SampledFrom(entities.SoundCategories).Draw(t, "category")
		name := rapid.StringMatching(`[a-z]{1,8}\.(ogg|wav)`).Draw(t, "name")
		priority := rapid.Bool().Draw(t, "priority")

		if err := catalog.Add(category, name, priority); err != nil {
			t.Fatalf("first add failed: %v", err)
		}
		snapshot := catalog.Clone()

		repeats := rapid.IntRange(1, 5).Draw(t, "repeats")
		for i := 0; i < repeats; i++ {
			err := catalog.Add(category, name, rapid.Bool().Draw(t, "retryPriority"))
			if !errors.IsAlreadyExists(err) {
				t.Fatalf("expected already exists, got %v", err)
			}
		}

		if !catalog.Equal(snapshot) {
			t.Fatalf("duplicate add changed the catalog")
		}
	})
}
