// Package wire defines the TradeUpdate wire record and its fixed binary layout.
//
// A TradeUpdate is a 40-byte little-endian record with no header, length
// prefix, checksum or version tag:
//
//	offset  width  field   type
//	0       8      ts      uint64
//	8       12     symbol  raw bytes
//	20      8      price   int64 (two's complement, unscaled)
//	28      8      qty     uint64
//	36      4      venue   raw bytes
//
// # Layout Table
//
// Field order, offsets, widths and kinds live in TradeUpdateLayout. The
// decoder, encoder and inspection tools walk that table instead of carrying
// their own offsets.
//
// # Fixed Byte Fields
//
// Symbol and venue are byte arrays, not strings. They are copied verbatim and
// are not guaranteed to contain a zero terminator. Trimming and escaping for
// display is left to the renderer.
//
// # Trailing Bytes
//
// Buffers shorter than TradeUpdateSize fail with ErrBufferTooSmall. Longer
// buffers decode successfully; bytes past offset 40 are ignored.
package wire
