//go:build integration

package client

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-gamekit/internal/handlers/gamekit/v1alpha1"
)

// Run against a live server: GAMEKIT_SERVER=localhost:50051 go test -tags integration ./cmd/server/client
func TestLiveServer(t *testing.T) {
	addr := os.Getenv("GAMEKIT_SERVER")
	if addr == "" {
		t.Skip("GAMEKIT_SERVER not set")
	}
	serverAddr = addr

	conn, err := createConnection()
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	audioClient := v1alpha1.NewAudioServiceClient(conn)
	_, err = audioClient.ChangeVolume(ctx, &v1alpha1.ChangeVolumeRequest{Channel: "effect", Level: -4})
	require.NoError(t, err)

	see, err := audioClient.SeeVolume(ctx, &v1alpha1.SeeVolumeRequest{Channel: "effect"})
	require.NoError(t, err)
	assert.Equal(t, float32(-4), see.Level)

	_, err = audioClient.SeeVolume(ctx, &v1alpha1.SeeVolumeRequest{Channel: "sfx"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	inventoryClient := v1alpha1.NewInventoryServiceClient(conn)
	_, err = inventoryClient.AddItem(ctx, &v1alpha1.AddItemRequest{Item: &v1alpha1.Item{Name: "integration_token", Amount: 1}})
	require.NoError(t, err)

	_, err = inventoryClient.RemoveItem(ctx, &v1alpha1.RemoveItemRequest{Item: &v1alpha1.Item{Name: "integration_token", Amount: 2}})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}
