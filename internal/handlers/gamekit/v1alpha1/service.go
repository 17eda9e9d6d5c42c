package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// Service names
const (
	AudioServiceName     = "gamekit.v1alpha1.AudioService"
	InventoryServiceName = "gamekit.v1alpha1.InventoryService"
)

// unary adapts a typed method into a grpc.MethodDesc the way generated code does
func unary[S, Req, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+service+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// AudioServiceServer is the server API for the audio service
type AudioServiceServer interface {
	ChangeVolume(context.Context, *ChangeVolumeRequest) (*ChangeVolumeResponse, error)
	SeeVolume(context.Context, *SeeVolumeRequest) (*SeeVolumeResponse, error)
	FindSound(context.Context, *FindSoundRequest) (*FindSoundResponse, error)
	AddSound(context.Context, *AddSoundRequest) (*AddSoundResponse, error)
	UpsertSound(context.Context, *UpsertSoundRequest) (*UpsertSoundResponse, error)
	RemoveSound(context.Context, *RemoveSoundRequest) (*RemoveSoundResponse, error)
	ListSounds(context.Context, *ListSoundsRequest) (*ListSoundsResponse, error)
	LoadSound(context.Context, *LoadSoundRequest) (*LoadSoundResponse, error)
	Play(context.Context, *PlayRequest) (*PlayResponse, error)
	Stop(context.Context, *StopRequest) (*StopResponse, error)
	StopAll(context.Context, *StopAllRequest) (*StopAllResponse, error)
	ReloadCatalog(context.Context, *ReloadCatalogRequest) (*ReloadCatalogResponse, error)
}

// AudioService_ServiceDesc is the grpc.ServiceDesc for the audio service
var AudioService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AudioServiceName,
	HandlerType: (*AudioServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(AudioServiceName, "ChangeVolume", AudioServiceServer.ChangeVolume),
		unary(AudioServiceName, "SeeVolume", AudioServiceServer.SeeVolume),
		unary(AudioServiceName, "FindSound", AudioServiceServer.FindSound),
		unary(AudioServiceName, "AddSound", AudioServiceServer.AddSound),
		unary(AudioServiceName, "UpsertSound", AudioServiceServer.UpsertSound),
		unary(AudioServiceName, "RemoveSound", AudioServiceServer.RemoveSound),
		unary(AudioServiceName, "ListSounds", AudioServiceServer.ListSounds),
		unary(AudioServiceName, "LoadSound", AudioServiceServer.LoadSound),
		unary(AudioServiceName, "Play", AudioServiceServer.Play),
		unary(AudioServiceName, "Stop", AudioServiceServer.Stop),
		unary(AudioServiceName, "StopAll", AudioServiceServer.StopAll),
		unary(AudioServiceName, "ReloadCatalog", AudioServiceServer.ReloadCatalog),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gamekit/v1alpha1/audio.json",
}

// RegisterAudioServiceServer registers the audio service on s
func RegisterAudioServiceServer(s grpc.ServiceRegistrar, srv AudioServiceServer) {
	s.RegisterService(&AudioService_ServiceDesc, srv)
}

// AudioServiceClient calls the audio service
type AudioServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAudioServiceClient creates an audio service client on cc
func NewAudioServiceClient(cc grpc.ClientConnInterface) *AudioServiceClient {
	return &AudioServiceClient{cc: cc}
}

func (c *AudioServiceClient) ChangeVolume(ctx context.Context, in *ChangeVolumeRequest, opts ...grpc.CallOption) (*ChangeVolumeResponse, error) {
	return invoke[ChangeVolumeResponse](ctx, c.cc, AudioServiceName, "ChangeVolume", in, opts...)
}

func (c *AudioServiceClient) SeeVolume(ctx context.Context, in *SeeVolumeRequest, opts ...grpc.CallOption) (*SeeVolumeResponse, error) {
	return invoke[SeeVolumeResponse](ctx, c.cc, AudioServiceName, "SeeVolume", in, opts...)
}

func (c *AudioServiceClient) FindSound(ctx context.Context, in *FindSoundRequest, opts ...grpc.CallOption) (*FindSoundResponse, error) {
	return invoke[FindSoundResponse](ctx, c.cc, AudioServiceName, "FindSound", in, opts...)
}

func (c *AudioServiceClient) AddSound(ctx context.Context, in *AddSoundRequest, opts ...grpc.CallOption) (*AddSoundResponse, error) {
	return invoke[AddSoundResponse](ctx, c.cc, AudioServiceName, "AddSound", in, opts...)
}

func (c *AudioServiceClient) UpsertSound(ctx context.Context, in *UpsertSoundRequest, opts ...grpc.CallOption) (*UpsertSoundResponse, error) {
	return invoke[UpsertSoundResponse](ctx, c.cc, AudioServiceName, "UpsertSound", in, opts...)
}

func (c *AudioServiceClient) RemoveSound(ctx context.Context, in *RemoveSoundRequest, opts ...grpc.CallOption) (*RemoveSoundResponse, error) {
	return invoke[RemoveSoundResponse](ctx, c.cc, AudioServiceName, "RemoveSound", in, opts...)
}

func (c *AudioServiceClient) ListSounds(ctx context.Context, in *ListSoundsRequest, opts ...grpc.CallOption) (*ListSoundsResponse, error) {
	return invoke[ListSoundsResponse](ctx, c.cc, AudioServiceName, "ListSounds", in, opts...)
}

func (c *AudioServiceClient) LoadSound(ctx context.Context, in *LoadSoundRequest, opts ...grpc.CallOption) (*LoadSoundResponse, error) {
	return invoke[LoadSoundResponse](ctx, c.cc, AudioServiceName, "LoadSound", in, opts...)
}

func (c *AudioServiceClient) Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*PlayResponse, error) {
	return invoke[PlayResponse](ctx, c.cc, AudioServiceName, "Play", in, opts...)
}

func (c *AudioServiceClient) Stop(ctx context.Context, in *StopRequest, opts ...grpc.CallOption) (*StopResponse, error) {
	return invoke[StopResponse](ctx, c.cc, AudioServiceName, "Stop", in, opts...)
}

func (c *AudioServiceClient) StopAll(ctx context.Context, in *StopAllRequest, opts ...grpc.CallOption) (*StopAllResponse, error) {
	return invoke[StopAllResponse](ctx, c.cc, AudioServiceName, "StopAll", in, opts...)
}

func (c *AudioServiceClient) ReloadCatalog(ctx context.Context, in *ReloadCatalogRequest, opts ...grpc.CallOption) (*ReloadCatalogResponse, error) {
	return invoke[ReloadCatalogResponse](ctx, c.cc, AudioServiceName, "ReloadCatalog", in, opts...)
}

// InventoryServiceServer is the server API for the inventory service
type InventoryServiceServer interface {
	AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*RemoveItemResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	SaveInventory(context.Context, *SaveInventoryRequest) (*SaveInventoryResponse, error)
	LoadInventory(context.Context, *LoadInventoryRequest) (*LoadInventoryResponse, error)
}

// InventoryService_ServiceDesc is the grpc.ServiceDesc for the inventory service
var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(InventoryServiceName, "AddItem", InventoryServiceServer.AddItem),
		unary(InventoryServiceName, "RemoveItem", InventoryServiceServer.RemoveItem),
		unary(InventoryServiceName, "ListItems", InventoryServiceServer.ListItems),
		unary(InventoryServiceName, "SaveInventory", InventoryServiceServer.SaveInventory),
		unary(InventoryServiceName, "LoadInventory", InventoryServiceServer.LoadInventory),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gamekit/v1alpha1/inventory.json",
}

// RegisterInventoryServiceServer registers the inventory service on s
func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

// InventoryServiceClient calls the inventory service
type InventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewInventoryServiceClient creates an inventory service client on cc
func NewInventoryServiceClient(cc grpc.ClientConnInterface) *InventoryServiceClient {
	return &InventoryServiceClient{cc: cc}
}

func (c *InventoryServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error) {
	return invoke[AddItemResponse](ctx, c.cc, InventoryServiceName, "AddItem", in, opts...)
}

func (c *InventoryServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*RemoveItemResponse, error) {
	return invoke[RemoveItemResponse](ctx, c.cc, InventoryServiceName, "RemoveItem", in, opts...)
}

func (c *InventoryServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	return invoke[ListItemsResponse](ctx, c.cc, InventoryServiceName, "ListItems", in, opts...)
}

func (c *InventoryServiceClient) SaveInventory(ctx context.Context, in *SaveInventoryRequest, opts ...grpc.CallOption) (*SaveInventoryResponse, error) {
	return invoke[SaveInventoryResponse](ctx, c.cc, InventoryServiceName, "SaveInventory", in, opts...)
}

func (c *InventoryServiceClient) LoadInventory(ctx context.Context, in *LoadInventoryRequest, opts ...grpc.CallOption) (*LoadInventoryResponse, error) {
	return invoke[LoadInventoryResponse](ctx, c.cc, InventoryServiceName, "LoadInventory", in, opts...)
}
