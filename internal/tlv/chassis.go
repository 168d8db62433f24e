package tlv

import "encoding/hex"

// ChassisIDSubtype qualifies how the chassis identifier should be read.
type ChassisIDSubtype uint8

const (
	ChassisIDSubtypeReserved         ChassisIDSubtype = 0
	ChassisIDSubtypeChassisComponent ChassisIDSubtype = 1
	ChassisIDSubtypeInterfaceAlias   ChassisIDSubtype = 2
	ChassisIDSubtypePortComponent    ChassisIDSubtype = 3
	ChassisIDSubtypeMACAddress       ChassisIDSubtype = 4
	ChassisIDSubtypeNetworkAddress   ChassisIDSubtype = 5
	ChassisIDSubtypeInterfaceName    ChassisIDSubtype = 6
	ChassisIDSubtypeLocal            ChassisIDSubtype = 7
)

func (s ChassisIDSubtype) String() string {
	switch s {
	case ChassisIDSubtypeChassisComponent:
		return "Chassis component"
	case ChassisIDSubtypeInterfaceAlias:
		return "Interface Alias"
	case ChassisIDSubtypePortComponent:
		return "Port component"
	case ChassisIDSubtypeMACAddress:
		return "MAC address"
	case ChassisIDSubtypeNetworkAddress:
		return "Network address"
	case ChassisIDSubtypeInterfaceName:
		return "Interface name"
	case ChassisIDSubtypeLocal:
		return "Locally assigned"
	default:
		return "Reserved"
	}
}

// ChassisID is the mandatory TLV identifying the advertising device.
type ChassisID struct {
	Subtype ChassisIDSubtype
	ID      []byte
}

func (ChassisID) Code() TypeCode { return TypeChassisID }

// IDString renders the identifier: colon-separated hex for the MAC subtype,
// plain hex otherwise.
func (v ChassisID) IDString() string {
	if v.Subtype == ChassisIDSubtypeMACAddress {
		return colonHex(v.ID)
	}
	return hex.EncodeToString(v.ID)
}

func (v ChassisID) Fields() map[string]any {
	return map[string]any{
		"chassis_id_subtype": v.Subtype.String(),
		"chassis_id":         v.IDString(),
	}
}

// The identifier is at least the fixed 6 octets following the subtype, so
// the shortest well-formed value is 7 bytes.
const (
	chassisIDMinLength = 7
	chassisIDMaxLength = 256
)

func decodeChassisID(rec Record) (Value, error) {
	if err := checkLength(rec, chassisIDMinLength, chassisIDMaxLength); err != nil {
		return nil, err
	}
	return ChassisID{
		Subtype: ChassisIDSubtype(rec.Value[0]),
		ID:      rec.Value[1:],
	}, nil
}
