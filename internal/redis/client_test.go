package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-gamekit/internal/redis"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	testCases := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "host and port", address: mr.Addr()},
		{name: "url", address: "redis://" + mr.Addr() + "/0"},
		{name: "empty", address: "", wantErr: true},
		{name: "bad url", address: "http://" + mr.Addr(), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := redis.NewClient(tc.address, nil)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer func() { _ = client.Close() }()

			require.NoError(t, client.Set(context.Background(), "MasterVol", "-6", 0).Err())
			got, err := mr.Get("MasterVol")
			require.NoError(t, err)
			assert.Equal(t, "-6", got)
		})
	}
}
