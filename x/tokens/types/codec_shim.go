package types

import "encoding/json"

// jsonProtoShim backs the gogoproto Marshaler/Unmarshaler interfaces with
// plain JSON encoding, for the same reason as x/dex/types/codec_shim.go:
// no protoc toolchain is available to generate real wire-format codecs.
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
