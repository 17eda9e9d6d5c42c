package mixer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gamekit/internal/clients/mixer"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/testutils"
)

// MixerContractSuite runs the same checks against every Mixer implementation
type MixerContractSuite struct {
	suite.Suite
	newMixer func() mixer.Mixer
	ctx      context.Context
}

func (s *MixerContractSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *MixerContractSuite) TestSetGetClear() {
	m := s.newMixer()

	_, ok, err := m.GetFloat(s.ctx, "MasterVol")
	s.Require().NoError(err)
	s.False(ok, "unset parameter reads as not set")

	s.Require().NoError(m.SetFloat(s.ctx, "MasterVol", -12.5))
	level, ok, err := m.GetFloat(s.ctx, "MasterVol")
	s.Require().NoError(err)
	s.True(ok)
	s.InDelta(-12.5, level, 0.0001)

	s.Require().NoError(m.SetFloat(s.ctx, "MasterVol", 3))
	level, _, err = m.GetFloat(s.ctx, "MasterVol")
	s.Require().NoError(err)
	s.InDelta(3, level, 0.0001)

	s.Require().NoError(m.ClearFloat(s.ctx, "MasterVol"))
	_, ok, err = m.GetFloat(s.ctx, "MasterVol")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *MixerContractSuite) TestParamsAreIndependent() {
	m := s.newMixer()
	s.Require().NoError(m.SetFloat(s.ctx, "MaxMusicVol", -20))
	s.Require().NoError(m.SetFloat(s.ctx, "MaxVoiceVol", 0))

	s.Require().NoError(m.ClearFloat(s.ctx, "MaxMusicVol"))
	level, ok, err := m.GetFloat(s.ctx, "MaxVoiceVol")
	s.Require().NoError(err)
	s.True(ok)
	s.InDelta(0, level, 0.0001)
}

func TestInMemoryMixer(t *testing.T) {
	suite.Run(t, &MixerContractSuite{newMixer: func() mixer.Mixer { return mixer.NewInMemory() }})
}

func TestRedisMixer(t *testing.T) {
	client, _ := testutils.CreateTestRedisClient(t)
	suite.Run(t, &MixerContractSuite{newMixer: func() mixer.Mixer {
		m, err := mixer.NewRedis(&mixer.RedisConfig{Client: client, Key: "mixer:" + t.Name()})
		if err != nil {
			t.Fatal(err)
		}
		_ = client.Del(context.Background(), "mixer:"+t.Name()) // nolint:errcheck // fresh hash per test
		return m
	}})
}

func TestRedisMixer_StoresHash(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)
	m, err := mixer.NewRedis(&mixer.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}

	if err := m.SetFloat(context.Background(), "MaxEffectVol", -6); err != nil {
		t.Fatal(err)
	}
	if got := mr.HGet(mixer.DefaultRedisKey, "MaxEffectVol"); got != "-6" {
		t.Fatalf("expected -6 in hash, got %q", got)
	}
}

func TestRedisMixer_Errors(t *testing.T) {
	client, _ := testutils.CreateTestRedisClient(t)

	_, err := mixer.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for nil config, got %v", err)
	}
	_, err = mixer.NewRedis(&mixer.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for nil client, got %v", err)
	}

	m, err := mixer.NewRedis(&mixer.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetFloat(context.Background(), "", 1); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for empty param, got %v", err)
	}
}
