package tlv

import (
	"encoding/binary"
	"encoding/hex"
	"net"
)

// AddressSubtype is the IANA address family of a management address.
type AddressSubtype uint8

const (
	AddressSubtypeIPv4 AddressSubtype = 1
	AddressSubtypeIPv6 AddressSubtype = 2
)

func (s AddressSubtype) String() string {
	switch s {
	case AddressSubtypeIPv4:
		return "IPv4"
	case AddressSubtypeIPv6:
		return "IPv6"
	default:
		return "Other"
	}
}

// InterfaceSubtype qualifies the interface number of a management address.
type InterfaceSubtype uint8

const (
	InterfaceSubtypeReserved   InterfaceSubtype = 0
	InterfaceSubtypeUnknown    InterfaceSubtype = 1
	InterfaceSubtypeIfIndex    InterfaceSubtype = 2
	InterfaceSubtypeSystemPort InterfaceSubtype = 3

	interfaceSubtypeMax = uint8(InterfaceSubtypeSystemPort)
)

func (s InterfaceSubtype) String() string {
	switch s {
	case InterfaceSubtypeUnknown:
		return "Unknown"
	case InterfaceSubtypeIfIndex:
		return "ifIndex"
	case InterfaceSubtypeSystemPort:
		return "System port number"
	default:
		return "Reserved"
	}
}

// ManagementAddress advertises an address at which the device's management
// entity can be reached, plus the interface it is bound to and an optional
// object identifier.
type ManagementAddress struct {
	AddressSubtype   AddressSubtype
	Address          []byte
	InterfaceSubtype InterfaceSubtype
	InterfaceNumber  uint32
	OID              string
}

func (ManagementAddress) Code() TypeCode { return TypeManagementAddress }

// AddressString renders the address: dotted quad for a 4-byte IPv4 address,
// the usual colon-grouped form for a 16-byte IPv6 address, plain hex for
// anything else.
func (v ManagementAddress) AddressString() string {
	switch {
	case v.AddressSubtype == AddressSubtypeIPv4 && len(v.Address) == net.IPv4len:
		return net.IP(v.Address).String()
	case v.AddressSubtype == AddressSubtypeIPv6 && len(v.Address) == net.IPv6len:
		return net.IP(v.Address).String()
	default:
		return hex.EncodeToString(v.Address)
	}
}

func (v ManagementAddress) Fields() map[string]any {
	fields := map[string]any{
		"management_address_subtype": v.AddressSubtype.String(),
		"management_address":         v.AddressString(),
		"interface_subtype":          v.InterfaceSubtype.String(),
		"interface_number":           int(v.InterfaceNumber),
	}
	if v.OID != "" {
		fields["oid"] = v.OID
	}
	return fields
}

const (
	mgmtAddrMinLength = 9
	mgmtAddrMaxLength = 167
)

func decodeManagementAddress(rec Record) (Value, error) {
	if err := checkLength(rec, mgmtAddrMinLength, mgmtAddrMaxLength); err != nil {
		return nil, err
	}
	cur := cursor{buf: rec.Value}

	addrLen, err := cur.byte()
	if err != nil {
		return nil, err
	}
	if addrLen < 1 {
		return nil, &FieldError{
			Code:   rec.Code,
			Field:  "address_length",
			Reason: "must cover at least the address subtype octet",
		}
	}
	addr, err := cur.take(int(addrLen))
	if err != nil {
		return nil, err
	}

	ifSubtype, err := cur.byte()
	if err != nil {
		return nil, err
	}
	if ifSubtype > interfaceSubtypeMax {
		return nil, &FieldError{
			Code:   rec.Code,
			Field:  "interface_subtype",
			Reason: "unknown interface numbering subtype",
		}
	}
	ifNumber, err := cur.uint32()
	if err != nil {
		return nil, err
	}
	// A reserved numbering subtype announcing a concrete interface number
	// signals a non-conformant peer.
	if InterfaceSubtype(ifSubtype) == InterfaceSubtypeReserved && ifNumber != 0 {
		return nil, &FieldError{
			Code:   rec.Code,
			Field:  "interface_number",
			Reason: "nonzero interface number with reserved numbering subtype",
		}
	}

	oidLen, err := cur.byte()
	if err != nil {
		return nil, err
	}
	oid, err := cur.take(int(oidLen))
	if err != nil {
		return nil, err
	}

	return ManagementAddress{
		AddressSubtype:   AddressSubtype(addr[0]),
		Address:          addr[1:],
		InterfaceSubtype: InterfaceSubtype(ifSubtype),
		InterfaceNumber:  ifNumber,
		OID:              string(oid),
	}, nil
}

// cursor reads fixed-width fields off a buffer, reporting a TruncatedError
// instead of panicking when a declared inner length overruns the value.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) need(n int) error {
	if have := len(c.buf) - c.off; have < n {
		return &TruncatedError{Offset: c.off, Need: n, Have: have}
	}
	return nil
}

func (c *cursor) byte() (byte, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	b := c.buf[c.off]
	c.off++
	return b, nil
}

func (c *cursor) take(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) uint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
