package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-gamekit/internal/clients/mixer"
	"github.com/KirkDiggler/rpg-gamekit/internal/handlers/gamekit/v1alpha1"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/audio"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/inventory"
	inventoryrepo "github.com/KirkDiggler/rpg-gamekit/internal/repositories/inventory"
	"github.com/KirkDiggler/rpg-gamekit/internal/services/savemanager"
	"github.com/KirkDiggler/rpg-gamekit/internal/testutils"
)

const soundDir = "Audio"

func startServer(t *testing.T) *grpc.ClientConn {
	t.Helper()
	ctx := context.Background()

	audioService, err := audio.New(&audio.Config{
		Mixer:      mixer.NewInMemory(),
		ClipSource: testutils.CreateTestClipFS(soundDir),
		SoundDir:   soundDir,
	})
	require.NoError(t, err)
	require.NoError(t, audioService.LoadListFromJSON(ctx, []byte(testutils.TestCatalogJSON)))

	saveManager, err := savemanager.New(&savemanager.Config{
		Repository: inventoryrepo.NewInMemory(),
		PlayerID:   testutils.TestPlayerID,
	})
	require.NoError(t, err)

	inventoryService, err := inventory.New(&inventory.Config{
		SaveManager: saveManager,
		PlayerID:    testutils.TestPlayerID,
	})
	require.NoError(t, err)

	audioHandler, err := v1alpha1.NewAudioHandler(&v1alpha1.AudioHandlerConfig{AudioService: audioService})
	require.NoError(t, err)
	inventoryHandler, err := v1alpha1.NewInventoryHandler(&v1alpha1.InventoryHandlerConfig{InventoryService: inventoryService})
	require.NoError(t, err)

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterAudioServiceServer(server, audioHandler)
	v1alpha1.RegisterInventoryServiceServer(server, inventoryHandler)
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func TestServer_AudioOverJSONCodec(t *testing.T) {
	client := v1alpha1.NewAudioServiceClient(startServer(t))
	ctx := context.Background()

	see, err := client.SeeVolume(ctx, &v1alpha1.SeeVolumeRequest{Channel: "music"})
	require.NoError(t, err)
	assert.Equal(t, float32(audio.DefaultVolume), see.Level)

	_, err = client.ChangeVolume(ctx, &v1alpha1.ChangeVolumeRequest{Channel: "music", Level: -20})
	require.NoError(t, err)

	see, err = client.SeeVolume(ctx, &v1alpha1.SeeVolumeRequest{Channel: "music"})
	require.NoError(t, err)
	assert.Equal(t, float32(-20), see.Level)

	_, err = client.ChangeVolume(ctx, &v1alpha1.ChangeVolumeRequest{Channel: "reset"})
	require.NoError(t, err)
	see, err = client.SeeVolume(ctx, &v1alpha1.SeeVolumeRequest{Channel: "music"})
	require.NoError(t, err)
	assert.Equal(t, float32(0), see.Level)

	_, err = client.SeeVolume(ctx, &v1alpha1.SeeVolumeRequest{Channel: "reset"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	found, err := client.FindSound(ctx, &v1alpha1.FindSoundRequest{Category: "ambiance", Name: "cave.ogg"})
	require.NoError(t, err)
	assert.True(t, found.Found)

	played, err := client.Play(ctx, &v1alpha1.PlayRequest{Category: "music", Name: "theme.ogg", Loop: true})
	require.NoError(t, err)
	assert.Equal(t, "Audio/Music/theme.ogg", played.Clip.Path)

	_, err = client.Play(ctx, &v1alpha1.PlayRequest{Category: "effect", Name: "sword.wav"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_InventoryOverJSONCodec(t *testing.T) {
	client := v1alpha1.NewInventoryServiceClient(startServer(t))
	ctx := context.Background()

	loaded, err := client.LoadInventory(ctx, &v1alpha1.LoadInventoryRequest{})
	require.NoError(t, err)
	assert.Empty(t, loaded.Items, "a player with no save starts empty")

	added, err := client.AddItem(ctx, &v1alpha1.AddItemRequest{Item: &v1alpha1.Item{Name: "torch", Amount: 3}})
	require.NoError(t, err)
	assert.Equal(t, "added", added.Result)

	_, err = client.RemoveItem(ctx, &v1alpha1.RemoveItemRequest{Item: &v1alpha1.Item{Name: "torch", Amount: 4}})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	saved, err := client.SaveInventory(ctx, &v1alpha1.SaveInventoryRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), saved.Count)

	_, err = client.RemoveItem(ctx, &v1alpha1.RemoveItemRequest{Item: &v1alpha1.Item{Name: "torch", Amount: 3}})
	require.NoError(t, err)

	loaded, err = client.LoadInventory(ctx, &v1alpha1.LoadInventoryRequest{})
	require.NoError(t, err)
	assert.Equal(t, []*v1alpha1.Item{{Name: "torch", Amount: 3}}, loaded.Items)
}
