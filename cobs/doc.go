// Package cobs provides a Go implementation of Consistent Overhead Byte
// Stuffing (COBS).  The encoding removes every zero byte from a binary
// payload with bounded overhead (at most one extra byte per 254 payload
// bytes), so that a single zero byte can be used as a frame delimiter in a
// byte-oriented stream such as a serial link or a packet socket.  Locating
// the delimiter in a live stream is left to the caller; this package only
// transforms complete payloads and frames.
package cobs
