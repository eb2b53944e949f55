package types

import "encoding/json"

// jsonProtoShim backs the gogoproto Marshaler/Unmarshaler interfaces with
// plain JSON encoding. There is no protoc toolchain available to generate
// real wire-format codecs for the Msg/Query types below, so each type
// forwards to these helpers instead of hand-rolled protobuf varint/tag
// encoding; see DESIGN.md for the tradeoff.
func jsonMarshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func jsonMarshalTo(v interface{}, data []byte) (int, error) {
	bz, err := jsonMarshal(v)
	if err != nil {
		return 0, err
	}
	return copy(data, bz), nil
}

func jsonMarshalToSizedBuffer(v interface{}, data []byte) (int, error) {
	bz, err := jsonMarshal(v)
	if err != nil {
		return 0, err
	}
	n := copy(data[len(data)-len(bz):], bz)
	return n, nil
}

func jsonSize(v interface{}) int {
	bz, err := jsonMarshal(v)
	if err != nil {
		return 0
	}
	return len(bz)
}

func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
