// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vlring

import "encoding/binary"

// HeaderSize is the fixed, 8-byte-aligned size of every FramedMessage
// header. length, type, and count are always present even for padding
// frames, which carry an empty body.
const HeaderSize = 8

// Message kinds carried over a VLRing. TypePadding never reaches a
// caller's handler — ReadOne/ReadAll skip padding frames internally.
const (
	TypePadding    uint16 = 0xFFFF
	TypeTrade      uint16 = 1
	TypeDepth      uint16 = 2
	TypeBookTicker uint16 = 3
	TypeSnapshot   uint16 = 4
)

// Header is the 8-byte FramedMessage header: total frame length
// (including the header itself, exact and unrounded — the physical
// reservation in the ring is this value rounded up to 8 via AlignUp8,
// not Length itself; callers that need the aligned stride should use
// that, not Length directly), message kind, and an optional entry count
// used by variable-length bodies (e.g. a depth snapshot's price/qty
// array). A padding frame's Length is the exact, already-aligned size of
// the gap it fills.
type Header struct {
	Length uint32
	Type   uint16
	Count  uint16
}

// encodeHeader writes h into buf (which must be at least HeaderSize
// bytes) in little-endian wire order.
func encodeHeader(buf []byte, h Header) {
	binary.LittleEndian.PutUint32(buf[0:4], h.Length)
	binary.LittleEndian.PutUint16(buf[4:6], h.Type)
	binary.LittleEndian.PutUint16(buf[6:8], h.Count)
}

// decodeHeader reads a Header from buf (which must be at least
// HeaderSize bytes).
func decodeHeader(buf []byte) Header {
	return Header{
		Length: binary.LittleEndian.Uint32(buf[0:4]),
		Type:   binary.LittleEndian.Uint16(buf[4:6]),
		Count:  binary.LittleEndian.Uint16(buf[6:8]),
	}
}

// encodePaddingHeader writes a padding header of the given total length
// (header only — padding frames have no body) into buf.
func encodePaddingHeader(buf []byte, length uint32) {
	encodeHeader(buf, Header{Length: length, Type: TypePadding})
}
