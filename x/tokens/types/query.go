package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

type QueryTokenRequest struct {
	Hash string `json:"hash"`
}

type QueryTokenResponse struct {
	Token *Token `json:"token"`
}

type QueryBalanceRequest struct {
	Account string `json:"account"`
	Token   string `json:"token"`
}

type QueryBalanceResponse struct {
	Free   string `json:"free"`
	Frozen string `json:"frozen"`
}

// QueryServer is the server API for the tokens module's Query service.
type QueryServer interface {
	Token(context.Context, *QueryTokenRequest) (*QueryTokenResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
}

func registerQueryUnaryHandler(method string, newReq func() interface{}, call func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokens.Query/" + method}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv, ctx, req)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "tokens.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		registerQueryUnaryHandler("Token", func() interface{} { return new(QueryTokenRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServer).Token(ctx, req.(*QueryTokenRequest))
			}),
		registerQueryUnaryHandler("Balance", func() interface{} { return new(QueryBalanceRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServer).Balance(ctx, req.(*QueryBalanceRequest))
			}),
	},
	Metadata: "tokens/query.proto",
}

// RegisterQueryServer registers srv against the gRPC query router.
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

// QueryClient is the client API for the tokens module's Query service,
// used by the CLI against a node's gRPC query router.
type QueryClient interface {
	Token(ctx context.Context, in *QueryTokenRequest, opts ...grpc.CallOption) (*QueryTokenResponse, error)
	Balance(ctx context.Context, in *QueryBalanceRequest, opts ...grpc.CallOption) (*QueryBalanceResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Token(ctx context.Context, in *QueryTokenRequest, opts ...grpc.CallOption) (*QueryTokenResponse, error) {
	out := new(QueryTokenResponse)
	err := c.cc.Invoke(ctx, "/tokens.Query/Token", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Balance(ctx context.Context, in *QueryBalanceRequest, opts ...grpc.CallOption) (*QueryBalanceResponse, error) {
	out := new(QueryBalanceResponse)
	err := c.cc.Invoke(ctx, "/tokens.Query/Balance", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *QueryTokenRequest) Reset()         { *m = QueryTokenRequest{} }
func (m *QueryTokenRequest) String() string { return "tokens/QueryTokenRequest" }
func (m *QueryTokenRequest) ProtoMessage()  {}
func (m *QueryTokenRequest) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *QueryTokenRequest) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *QueryTokenRequest) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryTokenRequest) Size() int                   { return jsonSize(m) }
func (m *QueryTokenRequest) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryTokenResponse) Reset()         { *m = QueryTokenResponse{} }
func (m *QueryTokenResponse) String() string { return "tokens/QueryTokenResponse" }
func (m *QueryTokenResponse) ProtoMessage()  {}
func (m *QueryTokenResponse) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *QueryTokenResponse) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *QueryTokenResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryTokenResponse) Size() int                   { return jsonSize(m) }
func (m *QueryTokenResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryBalanceRequest) Reset()         { *m = QueryBalanceRequest{} }
func (m *QueryBalanceRequest) String() string { return "tokens/QueryBalanceRequest" }
func (m *QueryBalanceRequest) ProtoMessage()  {}
func (m *QueryBalanceRequest) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *QueryBalanceRequest) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *QueryBalanceRequest) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryBalanceRequest) Size() int                   { return jsonSize(m) }
func (m *QueryBalanceRequest) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryBalanceResponse) Reset()         { *m = QueryBalanceResponse{} }
func (m *QueryBalanceResponse) String() string { return "tokens/QueryBalanceResponse" }
func (m *QueryBalanceResponse) ProtoMessage()  {}
func (m *QueryBalanceResponse) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *QueryBalanceResponse) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *QueryBalanceResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryBalanceResponse) Size() int                   { return jsonSize(m) }
func (m *QueryBalanceResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }
