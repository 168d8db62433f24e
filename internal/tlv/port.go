package tlv

// PortIDSubtype qualifies how the port identifier should be read.
type PortIDSubtype uint8

const (
	PortIDSubtypeReserved       PortIDSubtype = 0
	PortIDSubtypeInterfaceAlias PortIDSubtype = 1
	PortIDSubtypePortComponent  PortIDSubtype = 2
	PortIDSubtypeMACAddress     PortIDSubtype = 3
	PortIDSubtypeNetworkAddress PortIDSubtype = 4
	PortIDSubtypeInterfaceName  PortIDSubtype = 5
	PortIDSubtypeAgentCircuitID PortIDSubtype = 6
	PortIDSubtypeLocal          PortIDSubtype = 7
)

func (s PortIDSubtype) String() string {
	switch s {
	case PortIDSubtypeInterfaceAlias:
		return "Interface alias"
	case PortIDSubtypePortComponent:
		return "Port component"
	case PortIDSubtypeMACAddress:
		return "MAC address"
	case PortIDSubtypeNetworkAddress:
		return "Network address"
	case PortIDSubtypeInterfaceName:
		return "Interface name"
	case PortIDSubtypeAgentCircuitID:
		return "Agent circuit ID"
	case PortIDSubtypeLocal:
		return "Locally assigned"
	default:
		return "Reserved"
	}
}

// PortID is the mandatory TLV identifying the transmitting port.
type PortID struct {
	Subtype PortIDSubtype
	ID      string
}

func (PortID) Code() TypeCode { return TypePortID }

func (v PortID) Fields() map[string]any {
	return map[string]any{
		"port_id_subtype": v.Subtype.String(),
		"port_id":         v.ID,
	}
}

const (
	portIDMinLength = 1
	portIDMaxLength = 255
)

func decodePortID(rec Record) (Value, error) {
	if err := checkLength(rec, portIDMinLength, portIDMaxLength); err != nil {
		return nil, err
	}
	id, err := decodeText(rec.Code, rec.Value[1:], "port_id")
	if err != nil {
		return nil, err
	}
	return PortID{
		Subtype: PortIDSubtype(rec.Value[0]),
		ID:      id,
	}, nil
}
