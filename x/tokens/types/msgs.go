package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgIssueToken mints a new token and credits its entire initial supply
// to owner, since a ledger has to come from somewhere.
type MsgIssueToken struct {
	Owner       string `json:"owner"`
	Symbol      string `json:"symbol"`
	TotalSupply string `json:"total_supply"`
}

type MsgIssueTokenResponse struct {
	Hash string `json:"hash"`
}

func (m *MsgIssueToken) Reset()         { *m = MsgIssueToken{} }
func (m *MsgIssueToken) String() string { return "tokens/MsgIssueToken" }
func (m *MsgIssueToken) ProtoMessage()  {}
func (m *MsgIssueToken) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *MsgIssueToken) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *MsgIssueToken) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *MsgIssueToken) Size() int                  { return jsonSize(m) }
func (m *MsgIssueToken) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }
func (m *MsgIssueToken) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(m.Owner)
	if err != nil {
		return nil
	}
	return []sdk.AccAddress{addr}
}

func (m *MsgIssueToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("%s", err)
	}
	if m.Symbol == "" {
		return ErrInvalidTotalSupply.Wrap("symbol required")
	}
	supply, ok := math.NewIntFromString(m.TotalSupply)
	if !ok || supply.IsNegative() || supply.IsZero() {
		return ErrInvalidTotalSupply.Wrap("invalid total_supply")
	}
	return nil
}

func (m *MsgIssueTokenResponse) Reset()         { *m = MsgIssueTokenResponse{} }
func (m *MsgIssueTokenResponse) String() string { return "tokens/MsgIssueTokenResponse" }
func (m *MsgIssueTokenResponse) ProtoMessage()  {}
func (m *MsgIssueTokenResponse) Marshal() ([]byte, error)           { return jsonMarshal(m) }
func (m *MsgIssueTokenResponse) MarshalTo(data []byte) (int, error) { return jsonMarshalTo(m, data) }
func (m *MsgIssueTokenResponse) MarshalToSizedBuffer(data []byte) (int, error) {
	return jsonMarshalToSizedBuffer(m, data)
}
func (m *MsgIssueTokenResponse) Size() int                   { return jsonSize(m) }
func (m *MsgIssueTokenResponse) Unmarshal(data []byte) error { return jsonUnmarshal(data, m) }
