// File: server/codec.go
package server

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/net/websocket"
)

// Msgpack sends binary msgpack frames. Field names follow the json tags so both stream
// formats carry the same keys.
var Msgpack = websocket.Codec{Marshal: marshalMsgpack, Unmarshal: unmarshalMsgpack}

func marshalMsgpack(v interface{}) ([]byte, byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, websocket.BinaryFrame, err
	}
	return buf.Bytes(), websocket.BinaryFrame, nil
}

func unmarshalMsgpack(data []byte, _ byte, v interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// codecFor picks the stream codec from the ?format= query value.
func codecFor(format string) (websocket.Codec, string) {
	if format == "msgpack" {
		return Msgpack, "msgpack"
	}
	return websocket.JSON, "json"
}
