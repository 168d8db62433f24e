package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"net"

	"gitlab.com/d21d3q/golldp/internal/tlv"
)

const (
	// EtherType is the IEEE-assigned EtherType for LLDP.
	EtherType = 0x88CC
	// HeaderLength is the size of an untagged Ethernet header.
	HeaderLength = 14
)

// Multicast is the IEEE-assigned LLDP destination address.
var Multicast = net.HardwareAddr{0x01, 0x80, 0xC2, 0x00, 0x00, 0x0E}

// ErrNotLLDP reports a frame carrying some other protocol. It is not a
// decode failure; callers should skip the frame.
var ErrNotLLDP = errors.New("not an LLDP frame")

// Envelope is the outer Ethernet header of a captured frame.
type Envelope struct {
	Destination net.HardwareAddr
	Source      net.HardwareAddr
	EtherType   uint16
}

// Validate checks the Ethernet envelope of raw and returns it together with
// the LLDPDU payload. Frames shorter than an Ethernet header report a
// truncation; a wrong EtherType or destination address reports ErrNotLLDP.
// The input is only read, and the returned addresses do not alias it.
func Validate(raw []byte) (Envelope, []byte, error) {
	if len(raw) < HeaderLength {
		return Envelope{}, nil, &tlv.TruncatedError{Offset: 0, Need: HeaderLength, Have: len(raw)}
	}
	if binary.BigEndian.Uint16(raw[12:14]) != EtherType {
		return Envelope{}, nil, ErrNotLLDP
	}
	if !bytes.Equal(raw[0:6], Multicast) {
		return Envelope{}, nil, ErrNotLLDP
	}
	env := Envelope{
		Destination: net.HardwareAddr(append([]byte(nil), raw[0:6]...)),
		Source:      net.HardwareAddr(append([]byte(nil), raw[6:12]...)),
		EtherType:   EtherType,
	}
	return env, raw[HeaderLength:], nil
}
