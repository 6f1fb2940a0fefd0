package cobs

import (
	"bytes"
	"io"
)

// EncodeToBytes encodes payload as a complete terminated frame and returns
// it as a fresh slice.  It is a convenience wrapper around EncodeFrame for
// callers that do not manage their own buffers.
func EncodeToBytes(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(MaxEncodedLen(len(payload)))
	if err := EncodeFrame(payload, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeToBytes decodes one frame and returns the original payload as a
// fresh slice.  The terminator is optional, as with Decode.
func DecodeToBytes(frame []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(MaxDecodedLen(len(frame)))
	if err := Decode(frame, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeString encodes the bytes of s into dst, without a terminator, just
// like Encode.
func EncodeString(s string, dst *bytes.Buffer) error {
	return Encode([]byte(s), dst)
}

// EncodeFrom drains r and encodes everything it produced into dst as one
// complete terminated frame.  A reader that yields no bytes fails with
// InvalidArgument, the same as an empty payload.
func EncodeFrom(r io.Reader, dst *bytes.Buffer) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return EncodeFrame(payload, dst)
}
