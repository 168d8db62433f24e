// Package tlv splits an LLDPDU payload into TLV records and decodes each
// record into a typed value with strict length validation.
package tlv

import "fmt"

// TypeCode identifies a TLV. It occupies 7 bits on the wire, so valid codes
// range 0..127.
type TypeCode uint8

const (
	TypeEndOfLLDPDU        TypeCode = 0
	TypeChassisID          TypeCode = 1
	TypePortID             TypeCode = 2
	TypeTimeToLive         TypeCode = 3
	TypePortDescription    TypeCode = 4
	TypeSystemName         TypeCode = 5
	TypeSystemDescription  TypeCode = 6
	TypeSystemCapabilities TypeCode = 7
	TypeManagementAddress  TypeCode = 8
	TypeOrgSpecific        TypeCode = 127
)

func (c TypeCode) String() string {
	switch c {
	case TypeEndOfLLDPDU:
		return "EndOfLLDPDU"
	case TypeChassisID:
		return "ChassisID"
	case TypePortID:
		return "PortID"
	case TypeTimeToLive:
		return "TimeToLive"
	case TypePortDescription:
		return "PortDescription"
	case TypeSystemName:
		return "SystemName"
	case TypeSystemDescription:
		return "SystemDescription"
	case TypeSystemCapabilities:
		return "SystemCapabilities"
	case TypeManagementAddress:
		return "ManagementAddress"
	case TypeOrgSpecific:
		return "OrgSpecific"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// MaxValueLength is the largest value a 9-bit length field can announce.
const MaxValueLength = 0x1FF

// Header is the unpacked form of the 16-bit TLV header: 7 bits of type code
// followed by 9 bits of value length. Length counts the value only, never
// the header itself.
type Header struct {
	Code   TypeCode
	Length int
}

// DecodeHeader splits a big-endian 16-bit read into type code and length.
// Every 16-bit value is structurally valid; whether the announced length
// fits the remaining buffer is the scanner's problem.
func DecodeHeader(v uint16) Header {
	return Header{
		Code:   TypeCode(v >> 9),
		Length: int(v & MaxValueLength),
	}
}

// EncodeHeader packs a header back into wire form. The decoder has no
// transmit path; this exists for tests and fixture construction.
func EncodeHeader(h Header) uint16 {
	return uint16(h.Code)<<9 | uint16(h.Length)&MaxValueLength
}
