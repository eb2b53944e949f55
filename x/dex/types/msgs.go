package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreateTradePair registers a standing market for an unordered
// {base, quote} token pair.
type MsgCreateTradePair struct {
	Sender string `json:"sender"`
	Base   string `json:"base"`
	Quote  string `json:"quote"`
}

type MsgCreateTradePairResponse struct {
	Hash string `json:"hash"`
}

// MsgCreateOrder places a limit or market order (Price is ignored for
// Market orders).
type MsgCreateOrder struct {
	Sender     string `json:"sender"`
	Base       string `json:"base"`
	Quote      string `json:"quote"`
	Kind       int32  `json:"kind"`
	Side       int32  `json:"side"`
	Price      string `json:"price"`
	SellAmount string `json:"sell_amount"`
}

type MsgCreateOrderResponse struct {
	Hash   string `json:"hash"`
	Status int32  `json:"status"`
}

// MsgCancelOrder cancels a resting order owned by the sender.
type MsgCancelOrder struct {
	Sender    string `json:"sender"`
	OrderHash string `json:"order_hash"`
}

type MsgCancelOrderResponse struct{}

func (m *MsgCreateTradePair) Reset()         { *m = MsgCreateTradePair{} }
func (m *MsgCreateTradePair) String() string { return "dex/MsgCreateTradePair" }
func (m *MsgCreateTradePair) ProtoMessage()  {}
func (m *MsgCreateTradePair) Marshal() ([]byte, error)             { return jsonMarshal(m) }
func (m *MsgCreateTradePair) MarshalTo(data []byte) (int, error)   { return jsonMarshalTo(m, data) }
func (m *MsgCreateTradePair) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *MsgCreateTradePair) Size() int                  { return jsonSize(m) }
func (m *MsgCreateTradePair) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }
func (m *MsgCreateTradePair) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		return nil
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgCreateTradePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return ErrBoundsCheckFailed.Wrapf("invalid sender: %s", err)
	}
	if m.Base == "" || m.Quote == "" {
		return ErrBaseEqualQuote.Wrap("base and quote must be set")
	}
	if m.Base == m.Quote {
		return ErrBaseEqualQuote
	}
	return nil
}

func (m *MsgCreateTradePairResponse) Reset()         { *m = MsgCreateTradePairResponse{} }
func (m *MsgCreateTradePairResponse) String() string { return "dex/MsgCreateTradePairResponse" }
func (m *MsgCreateTradePairResponse) ProtoMessage()  {}
func (m *MsgCreateTradePairResponse) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *MsgCreateTradePairResponse) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *MsgCreateTradePairResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *MsgCreateTradePairResponse) Size() int                   { return jsonSize(m) }
func (m *MsgCreateTradePairResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *MsgCreateOrder) Reset()         { *m = MsgCreateOrder{} }
func (m *MsgCreateOrder) String() string { return "dex/MsgCreateOrder" }
func (m *MsgCreateOrder) ProtoMessage()  {}
func (m *MsgCreateOrder) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *MsgCreateOrder) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *MsgCreateOrder) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *MsgCreateOrder) Size() int                  { return jsonSize(m) }
func (m *MsgCreateOrder) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }
func (m *MsgCreateOrder) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		return nil
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgCreateOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return ErrBoundsCheckFailed.Wrapf("invalid sender: %s", err)
	}
	if m.Base == "" || m.Quote == "" || m.Base == m.Quote {
		return ErrBaseEqualQuote
	}
	if Side(m.Side) != SideBuy && Side(m.Side) != SideSell {
		return ErrBoundsCheckFailed.Wrap("invalid side")
	}
	if OrderKind(m.Kind) != OrderKindLimit && OrderKind(m.Kind) != OrderKindMarket {
		return ErrBoundsCheckFailed.Wrap("invalid order kind")
	}
	sellAmount, ok := math.NewIntFromString(m.SellAmount)
	if !ok || sellAmount.IsNegative() || sellAmount.IsZero() {
		return ErrBoundsCheckFailed.Wrap("invalid sell_amount")
	}
	if OrderKind(m.Kind) == OrderKindLimit {
		price, ok := math.NewIntFromString(m.Price)
		if !ok || price.IsNegative() || price.IsZero() {
			return ErrBoundsCheckFailed.Wrap("invalid price")
		}
	}
	return nil
}

func (m *MsgCreateOrderResponse) Reset()         { *m = MsgCreateOrderResponse{} }
func (m *MsgCreateOrderResponse) String() string { return "dex/MsgCreateOrderResponse" }
func (m *MsgCreateOrderResponse) ProtoMessage()  {}
func (m *MsgCreateOrderResponse) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *MsgCreateOrderResponse) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *MsgCreateOrderResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *MsgCreateOrderResponse) Size() int                   { return jsonSize(m) }
func (m *MsgCreateOrderResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }

func (m *MsgCancelOrder) Reset()         { *m = MsgCancelOrder{} }
func (m *MsgCancelOrder) String() string { return "dex/MsgCancelOrder" }
func (m *MsgCancelOrder) ProtoMessage()  {}
func (m *MsgCancelOrder) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *MsgCancelOrder) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *MsgCancelOrder) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *MsgCancelOrder) Size() int                  { return jsonSize(m) }
func (m *MsgCancelOrder) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }
func (m *MsgCancelOrder) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		return nil
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgCancelOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return ErrBoundsCheckFailed.Wrapf("invalid sender: %s", err)
	}
	if m.OrderHash == "" {
		return ErrNoMatchingOrder
	}
	return nil
}

func (m *MsgCancelOrderResponse) Reset()         { *m = MsgCancelOrderResponse{} }
func (m *MsgCancelOrderResponse) String() string { return "dex/MsgCancelOrderResponse" }
func (m *MsgCancelOrderResponse) ProtoMessage()  {}
func (m *MsgCancelOrderResponse) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *MsgCancelOrderResponse) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *MsgCancelOrderResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *MsgCancelOrderResponse) Size() int                   { return jsonSize(m) }
func (m *MsgCancelOrderResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }
