package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

type QueryTradePairRequest struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

type QueryTradePairResponse struct {
	TradePair *TradePair `json:"trade_pair"`
}

type QueryOrderRequest struct {
	Hash string `json:"hash"`
}

type QueryOrderResponse struct {
	Order *Order `json:"order"`
}

type QueryBestPricesRequest struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

type QueryBestPricesResponse struct {
	HasBestBid bool   `json:"has_best_bid"`
	BestBid    string `json:"best_bid"`
	HasBestAsk bool   `json:"has_best_ask"`
	BestAsk    string `json:"best_ask"`
}

type QueryRecentTradesRequest struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
	Limit uint32 `json:"limit"`
}

type QueryRecentTradesResponse struct {
	Trades []*Trade `json:"trades"`
}

type QueryOrderBookDepthRequest struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
	Depth uint32 `json:"depth"`
}

// DepthLevel is one aggregated price level on one side of the book.
type DepthLevel struct {
	Price      string `json:"price"`
	SellAmount string `json:"sell_amount"`
	BuyAmount  string `json:"buy_amount"`
	OrderCount uint32 `json:"order_count"`
}

type QueryOrderBookDepthResponse struct {
	Bids []DepthLevel `json:"bids"`
	Asks []DepthLevel `json:"asks"`
}

// QueryServer is the server API for the dex module's Query service.
type QueryServer interface {
	TradePair(context.Context, *QueryTradePairRequest) (*QueryTradePairResponse, error)
	Order(context.Context, *QueryOrderRequest) (*QueryOrderResponse, error)
	BestPrices(context.Context, *QueryBestPricesRequest) (*QueryBestPricesResponse, error)
	RecentTrades(context.Context, *QueryRecentTradesRequest) (*QueryRecentTradesResponse, error)
	OrderBookDepth(context.Context, *QueryOrderBookDepthRequest) (*QueryOrderBookDepthResponse, error)
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
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dex.Query/" + method}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv, ctx, req)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "dex.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		registerQueryUnaryHandler("TradePair", func() interface{} { return new(QueryTradePairRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServer).TradePair(ctx, req.(*QueryTradePairRequest))
			}),
		registerQueryUnaryHandler("Order", func() interface{} { return new(QueryOrderRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServer).Order(ctx, req.(*QueryOrderRequest))
			}),
		registerQueryUnaryHandler("BestPrices", func() interface{} { return new(QueryBestPricesRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServer).BestPrices(ctx, req.(*QueryBestPricesRequest))
			}),
		registerQueryUnaryHandler("RecentTrades", func() interface{} { return new(QueryRecentTradesRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServer).RecentTrades(ctx, req.(*QueryRecentTradesRequest))
			}),
		registerQueryUnaryHandler("OrderBookDepth", func() interface{} { return new(QueryOrderBookDepthRequest) },
			func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServer).OrderBookDepth(ctx, req.(*QueryOrderBookDepthRequest))
			}),
	},
	Metadata: "dex/query.proto",
}

// RegisterQueryServer registers srv against the gRPC query router.
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

// QueryClient is the client API for the dex module's Query service, used by
// the CLI against a node's gRPC query router.
type QueryClient interface {
	TradePair(ctx context.Context, in *QueryTradePairRequest, opts ...grpc.CallOption) (*QueryTradePairResponse, error)
	Order(ctx context.Context, in *QueryOrderRequest, opts ...grpc.CallOption) (*QueryOrderResponse, error)
	BestPrices(ctx context.Context, in *QueryBestPricesRequest, opts ...grpc.CallOption) (*QueryBestPricesResponse, error)
	RecentTrades(ctx context.Context, in *QueryRecentTradesRequest, opts ...grpc.CallOption) (*QueryRecentTradesResponse, error)
	OrderBookDepth(ctx context.Context, in *QueryOrderBookDepthRequest, opts ...grpc.CallOption) (*QueryOrderBookDepthResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) TradePair(ctx context.Context, in *QueryTradePairRequest, opts ...grpc.CallOption) (*QueryTradePairResponse, error) {
	out := new(QueryTradePairResponse)
	if err := c.cc.Invoke(ctx, "/dex.Query/TradePair", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Order(ctx context.Context, in *QueryOrderRequest, opts ...grpc.CallOption) (*QueryOrderResponse, error) {
	out := new(QueryOrderResponse)
	if err := c.cc.Invoke(ctx, "/dex.Query/Order", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) BestPrices(ctx context.Context, in *QueryBestPricesRequest, opts ...grpc.CallOption) (*QueryBestPricesResponse, error) {
	out := new(QueryBestPricesResponse)
	if err := c.cc.Invoke(ctx, "/dex.Query/BestPrices", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) RecentTrades(ctx context.Context, in *QueryRecentTradesRequest, opts ...grpc.CallOption) (*QueryRecentTradesResponse, error) {
	out := new(QueryRecentTradesResponse)
	if err := c.cc.Invoke(ctx, "/dex.Query/RecentTrades", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) OrderBookDepth(ctx context.Context, in *QueryOrderBookDepthRequest, opts ...grpc.CallOption) (*QueryOrderBookDepthResponse, error) {
	out := new(QueryOrderBookDepthResponse)
	if err := c.cc.Invoke(ctx, "/dex.Query/OrderBookDepth", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *QueryTradePairRequest) Reset()         { *m = QueryTradePairRequest{} }
func (m *QueryTradePairRequest) String() string { return "dex/QueryTradePairRequest" }
func (m *QueryTradePairRequest) ProtoMessage()  {}
func (m *QueryTradePairRequest) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *QueryTradePairRequest) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *QueryTradePairRequest) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryTradePairRequest) Size() int                   { return jsonSize(m) }
func (m *QueryTradePairRequest) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryTradePairResponse) Reset()         { *m = QueryTradePairResponse{} }
func (m *QueryTradePairResponse) String() string { return "dex/QueryTradePairResponse" }
func (m *QueryTradePairResponse) ProtoMessage()  {}
func (m *QueryTradePairResponse) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *QueryTradePairResponse) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *QueryTradePairResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryTradePairResponse) Size() int                   { return jsonSize(m) }
func (m *QueryTradePairResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryOrderRequest) Reset()         { *m = QueryOrderRequest{} }
func (m *QueryOrderRequest) String() string { return "dex/QueryOrderRequest" }
func (m *QueryOrderRequest) ProtoMessage()  {}
func (m *QueryOrderRequest) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *QueryOrderRequest) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *QueryOrderRequest) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryOrderRequest) Size() int                   { return jsonSize(m) }
func (m *QueryOrderRequest) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryOrderResponse) Reset()         { *m = QueryOrderResponse{} }
func (m *QueryOrderResponse) String() string { return "dex/QueryOrderResponse" }
func (m *QueryOrderResponse) ProtoMessage()  {}
func (m *QueryOrderResponse) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *QueryOrderResponse) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *QueryOrderResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryOrderResponse) Size() int                   { return jsonSize(m) }
func (m *QueryOrderResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryBestPricesRequest) Reset()         { *m = QueryBestPricesRequest{} }
func (m *QueryBestPricesRequest) String() string { return "dex/QueryBestPricesRequest" }
func (m *QueryBestPricesRequest) ProtoMessage()  {}
func (m *QueryBestPricesRequest) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *QueryBestPricesRequest) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *QueryBestPricesRequest) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryBestPricesRequest) Size() int                   { return jsonSize(m) }
func (m *QueryBestPricesRequest) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryBestPricesResponse) Reset()         { *m = QueryBestPricesResponse{} }
func (m *QueryBestPricesResponse) String() string { return "dex/QueryBestPricesResponse" }
func (m *QueryBestPricesResponse) ProtoMessage()  {}
func (m *QueryBestPricesResponse) Marshal() ([]byte, error) { return jsonMarshal(m) }
func (m *QueryBestPricesResponse) MarshalTo(data []byte) (int, error) {
	return jsonMarshalTo(m, data)
}
func (m *QueryBestPricesResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryBestPricesResponse) Size() int                   { return jsonSize(m) }
func (m *QueryBestPricesResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryRecentTradesRequest) Reset()         { *m = QueryRecentTradesRequest{} }
func (m *QueryRecentTradesRequest) String() string { return "dex/QueryRecentTradesRequest" }
func (m *QueryRecentTradesRequest) ProtoMessage()  {}
func (m *QueryRecentTradesRequest) Marshal() ([]byte, error) { return jsonMarshal(m) }
func (m *QueryRecentTradesRequest) MarshalTo(data []byte) (int, error) {
	return jsonMarshalTo(m, data)
}
func (m *QueryRecentTradesRequest) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryRecentTradesRequest) Size() int                   { return jsonSize(m) }
func (m *QueryRecentTradesRequest) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryRecentTradesResponse) Reset()         { *m = QueryRecentTradesResponse{} }
func (m *QueryRecentTradesResponse) String() string { return "dex/QueryRecentTradesResponse" }
func (m *QueryRecentTradesResponse) ProtoMessage()  {}
func (m *QueryRecentTradesResponse) Marshal() ([]byte, error) { return jsonMarshal(m) }
func (m *QueryRecentTradesResponse) MarshalTo(data []byte) (int, error) {
	return jsonMarshalTo(m, data)
}
func (m *QueryRecentTradesResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryRecentTradesResponse) Size() int                   { return jsonSize(m) }
func (m *QueryRecentTradesResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryOrderBookDepthRequest) Reset()         { *m = QueryOrderBookDepthRequest{} }
func (m *QueryOrderBookDepthRequest) String() string { return "dex/QueryOrderBookDepthRequest" }
func (m *QueryOrderBookDepthRequest) ProtoMessage()  {}
func (m *QueryOrderBookDepthRequest) Marshal() ([]byte, error) { return jsonMarshal(m) }
func (m *QueryOrderBookDepthRequest) MarshalTo(data []byte) (int, error) {
	return jsonMarshalTo(m, data)
}
func (m *QueryOrderBookDepthRequest) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryOrderBookDepthRequest) Size() int                   { return jsonSize(m) }
func (m *QueryOrderBookDepthRequest) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *QueryOrderBookDepthResponse) Reset()         { *m = QueryOrderBookDepthResponse{} }
func (m *QueryOrderBookDepthResponse) String() string { return "dex/QueryOrderBookDepthResponse" }
func (m *QueryOrderBookDepthResponse) ProtoMessage()  {}
func (m *QueryOrderBookDepthResponse) Marshal() ([]byte, error) { return jsonMarshal(m) }
func (m *QueryOrderBookDepthResponse) MarshalTo(data []byte) (int, error) {
	return jsonMarshalTo(m, data)
}
func (m *QueryOrderBookDepthResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *QueryOrderBookDepthResponse) Size() int                   { return jsonSize(m) }
func (m *QueryOrderBookDepthResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }
