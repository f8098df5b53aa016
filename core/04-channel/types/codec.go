package types

import "encoding/json"

// Marshal encodes a ChannelEnd for storage (see the connection layer's
// Marshal for why JSON is used as the in-process storage encoding).
func (c ChannelEnd) Marshal() []byte {
	bz, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalChannelEnd decodes a ChannelEnd written by Marshal.
func UnmarshalChannelEnd(bz []byte) ChannelEnd {
	var c ChannelEnd
	if err := json.Unmarshal(bz, &c); err != nil {
		panic(err)
	}
	return c
}

// String renders a Packet as JSON for log and debug messages. Packets
// travel as explicit message fields, not stored values, so there is no
// Marshal/Unmarshal pair for them.
func (p Packet) String() string {
	bz, _ := json.Marshal(p)
	return string(bz)
}
