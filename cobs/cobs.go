package cobs

import (
	"bytes"
	"errors"
)

// delimiter is the byte that the encoding eliminates from its output, and
// that optionally terminates an encoded frame.
const delimiter = 0x00

// maxRun is the longest zero-free literal run that a single block can carry.
// A block holding a full run has the length byte 0xff and, unlike every
// other non-final block, does not stand in for a zero byte of the payload.
const maxRun = 0xfe

var (
	// InvalidArgument is the error that is returned when an empty payload
	// or frame is passed to an encode or decode entry point.
	InvalidArgument = errors.New("Empty input")

	// InvalidEncoding is the error that is returned when a frame fails
	// validation during decoding: a required terminator is missing, a
	// length byte is zero, or a block claims more bytes than the frame
	// contains.
	InvalidEncoding = errors.New("Invalid COBS encoding")
)

// findZero looks for a zero byte within the first maxRun bytes of payload.
// If we find one, we return its index within payload.  If not, we return the
// length of the subset of payload that we looked in.  (That is, the minimum
// of maxRun and the actual length of payload.)
func findZero(payload []byte, maxRun int) int {
	if len(payload) < maxRun {
		maxRun = len(payload)
	} else {
		payload = payload[:maxRun]
	}
	result := bytes.IndexByte(payload, delimiter)
	if result == -1 {
		return maxRun
	}
	return result
}

// Encode writes payload into dst using the COBS encoding.  This guarantees
// that the content that we write does not contain any zero bytes.  (We do
// _not_ write a trailing zero terminator; use EncodeFrame if you want one,
// or write it yourself in between frames using EncodeDelimiter.)
//
// The empty payload has no encoding — a valid frame is always at least one
// block — so Encode fails with InvalidArgument when payload is empty.
func Encode(payload []byte, dst *bytes.Buffer) error {
	if len(payload) == 0 {
		return InvalidArgument
	}
	for {
		runSize := findZero(payload, maxRun)
		dst.WriteByte(byte(runSize + 1))
		dst.Write(payload[:runSize])
		payload = payload[runSize:]
		if runSize == maxRun {
			// A full block stands in for no zero.  If the payload ends
			// exactly on the block boundary, the frame still needs a
			// final block.
			if len(payload) == 0 {
				dst.WriteByte(1)
				return nil
			}
			continue
		}

		if len(payload) == 0 {
			// The run ended at the end of the payload, so the block we
			// just wrote is the final one.
			return nil
		}

		// The run ended at a zero.  The length byte we just wrote already
		// represents it, so skip over it.
		payload = payload[1:]
		if len(payload) == 0 {
			// The payload ended in a zero; an empty final block makes the
			// decoder re-insert it.
			dst.WriteByte(1)
			return nil
		}
	}
}

// EncodeDelimiter writes the single zero byte that terminates a COBS frame.
// You should use this to separate frames in your output stream.
func EncodeDelimiter(dst *bytes.Buffer) {
	dst.WriteByte(delimiter)
}

// EncodeFrame writes payload into dst as one complete COBS frame: the
// encoded blocks followed by a single zero terminator byte.
func EncodeFrame(payload []byte, dst *bytes.Buffer) error {
	if err := Encode(payload, dst); err != nil {
		return err
	}
	EncodeDelimiter(dst)
	return nil
}

// Decode reads an encoded frame and writes the original payload into dst.
// A trailing zero terminator is stripped when present but is not required;
// use DecodeFrame to require one.  Note the asymmetry that follows: a frame
// that merely happens to end in a zero byte has that byte stripped even
// though no terminator was asked for.  Existing encoders depend on exactly
// this behavior, so it is preserved rather than fixed.
//
// On error, whatever was already written to dst is meaningless and should be
// discarded along with the frame.
func Decode(frame []byte, dst *bytes.Buffer) error {
	if len(frame) == 0 {
		return InvalidArgument
	}
	if frame[len(frame)-1] == delimiter {
		frame = frame[:len(frame)-1]
	}
	return decodeBlocks(frame, dst)
}

// DecodeFrame reads one complete COBS frame, terminator included, and writes
// the original payload into dst.  It fails with InvalidEncoding if the final
// byte of frame is not the zero terminator.
func DecodeFrame(frame []byte, dst *bytes.Buffer) error {
	if len(frame) == 0 {
		return InvalidArgument
	}
	if frame[len(frame)-1] != delimiter {
		return InvalidEncoding
	}
	return decodeBlocks(frame[:len(frame)-1], dst)
}

// decodeBlocks parses the blocks of a frame whose terminator, if any, has
// already been stripped.  Each block is a length byte followed by length-1
// literal bytes.  Every block except the final one stands in for a zero byte
// of the original payload, unless its length byte is 0xff, which marks a
// zero-free run that hit the block size limit.
func decodeBlocks(frame []byte, dst *bytes.Buffer) error {
	for len(frame) > 0 {
		distance := int(frame[0])
		if distance == 0 || distance > len(frame) {
			return InvalidEncoding
		}
		dst.Write(frame[1:distance])
		if distance <= maxRun && distance < len(frame) {
			dst.WriteByte(delimiter)
		}
		frame = frame[distance:]
	}
	return nil
}

// MaxEncodedLen returns the largest number of bytes that encoding an n-byte
// payload as a complete terminated frame can produce: one length byte per
// 254 payload bytes, a final block, and the terminator.  Pass the result to
// dst.Grow before encoding to avoid reallocation; this is an optimization
// hint only, never a requirement.
func MaxEncodedLen(n int) int {
	return n + n/maxRun + 2
}

// MaxDecodedLen returns an upper bound on the payload size produced by
// decoding an n-byte frame.  Decoding never expands: a block's literals plus
// its implicit zero never outnumber the block's own bytes.
func MaxDecodedLen(n int) int {
	return n
}
