package tlv

import "encoding/binary"

// Record is one raw TLV as found on the wire. Value aliases the scanned
// buffer; callers that retain records beyond the walk must copy first.
type Record struct {
	Code   TypeCode
	Length int
	Value  []byte
}

// Scanner walks an LLDPDU payload record by record, in wire order. It
// follows the bufio.Scanner shape: Scan advances to the next record, Record
// returns the current one and Err reports the truncation that stopped the
// walk, if any.
//
// The walk consumes the payload exactly: every record accounts for
// 2+Length bytes and the scanner only finishes cleanly at the end of the
// buffer. An EndOfLLDPDU record does not stop the walk by itself, since
// captured frames often carry padding after the terminator; the padding is
// walked like any other bytes.
type Scanner struct {
	buf []byte
	off int
	rec Record
	err error
}

// NewScanner returns a scanner over one LLDPDU payload. An empty payload
// yields no records and no error.
func NewScanner(payload []byte) *Scanner {
	return &Scanner{buf: payload}
}

// Scan advances to the next record. It returns false at the end of the
// payload or on the first truncation; the two are told apart via Err.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.off >= len(s.buf) {
		return false
	}
	if rem := len(s.buf) - s.off; rem < 2 {
		s.err = &TruncatedError{Offset: s.off, Need: 2, Have: rem}
		return false
	}
	h := DecodeHeader(binary.BigEndian.Uint16(s.buf[s.off : s.off+2]))
	if rem := len(s.buf) - s.off - 2; rem < h.Length {
		s.err = &TruncatedError{Offset: s.off + 2, Need: h.Length, Have: rem}
		return false
	}
	s.rec = Record{
		Code:   h.Code,
		Length: h.Length,
		Value:  s.buf[s.off+2 : s.off+2+h.Length],
	}
	s.off += 2 + h.Length
	return true
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the truncation that stopped the walk, or nil after a clean
// finish.
func (s *Scanner) Err() error {
	return s.err
}
