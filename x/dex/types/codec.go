package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// MsgServer is the server API for the dex module's Msg service.
type MsgServer interface {
	CreateTradePair(context.Context, *MsgCreateTradePair) (*MsgCreateTradePairResponse, error)
	CreateOrder(context.Context, *MsgCreateOrder) (*MsgCreateOrderResponse, error)
	CancelOrder(context.Context, *MsgCancelOrder) (*MsgCancelOrderResponse, error)
}

func _Msg_CreateTradePair_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCreateTradePair)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CreateTradePair(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dex.Msg/CreateTradePair"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CreateTradePair(ctx, req.(*MsgCreateTradePair))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_CreateOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCreateOrder)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CreateOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dex.Msg/CreateOrder"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CreateOrder(ctx, req.(*MsgCreateOrder))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_CancelOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCancelOrder)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CancelOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dex.Msg/CancelOrder"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CancelOrder(ctx, req.(*MsgCancelOrder))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "dex.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateTradePair", Handler: _Msg_CreateTradePair_Handler},
		{MethodName: "CreateOrder", Handler: _Msg_CreateOrder_Handler},
		{MethodName: "CancelOrder", Handler: _Msg_CancelOrder_Handler},
	},
	Metadata: "dex/tx.proto",
}

// RegisterMsgServer registers srv against a gogoproto-compatible service
// router, the way generated *.pb.go code would.
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

// RegisterInterfaces registers the module's Msg implementations with the
// interface registry so they can travel inside a signed Tx as an Any.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateTradePair{},
		&MsgCreateOrder{},
		&MsgCancelOrder{},
	)
}

// RegisterLegacyAminoCodec registers the module's Msg types for Amino JSON
// signing, one RegisterConcrete call per Msg.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateTradePair{}, "dex/MsgCreateTradePair", nil)
	cdc.RegisterConcrete(&MsgCreateOrder{}, "dex/MsgCreateOrder", nil)
	cdc.RegisterConcrete(&MsgCancelOrder{}, "dex/MsgCancelOrder", nil)
}
