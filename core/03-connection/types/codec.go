package types

import "encoding/json"

// Marshal encodes a ConnectionEnd for storage. The host's provable store is
// treated as an opaque byte store by this engine (spec §1: wire-format
// serialization of the underlying Protobuf DTOs is an external contract);
// canonical JSON is used here purely as the in-process storage encoding.
func (c ConnectionEnd) Marshal() []byte {
	bz, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalConnectionEnd decodes a ConnectionEnd written by Marshal.
func UnmarshalConnectionEnd(bz []byte) ConnectionEnd {
	var c ConnectionEnd
	if err := json.Unmarshal(bz, &c); err != nil {
		panic(err)
	}
	return c
}
