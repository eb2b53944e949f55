package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// MsgServer is the server API for the tokens module's Msg service.
type MsgServer interface {
	IssueToken(context.Context, *MsgIssueToken) (*MsgIssueTokenResponse, error)
}

func _Msg_IssueToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgIssueToken)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).IssueToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokens.Msg/IssueToken"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).IssueToken(ctx, req.(*MsgIssueToken))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "tokens.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "IssueToken", Handler: _Msg_IssueToken_Handler},
	},
	Metadata: "tokens/tx.proto",
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
		&MsgIssueToken{},
	)
}

// RegisterLegacyAminoCodec registers the module's Msg types for Amino JSON
// signing, one RegisterConcrete call per Msg.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgIssueToken{}, "tokens/MsgIssueToken", nil)
}
