package tlv

import "encoding/binary"

// capabilityBits maps bit positions of the 16-bit capability bitmaps to
// names, bit 0 being the least significant. Bits 8..15 are reserved.
var capabilityBits = []struct {
	bit  uint
	name string
}{
	{0, "Other"},
	{1, "Repeater"},
	{2, "Bridge"},
	{3, "WLAN AP"},
	{4, "Router"},
	{5, "Telephone"},
	{6, "DOCSIS cable device"},
	{7, "Station only"},
}

// CapabilitySet holds the per-capability booleans of one bitmap.
type CapabilitySet map[string]bool

func capabilitySet(bits uint16) CapabilitySet {
	set := make(CapabilitySet, len(capabilityBits))
	for _, def := range capabilityBits {
		set[def.name] = bits&(1<<def.bit) != 0
	}
	return set
}

// SystemCapabilities carries two bitmaps: what the system can do and what is
// currently enabled.
type SystemCapabilities struct {
	SystemBits  uint16
	EnabledBits uint16
}

func (SystemCapabilities) Code() TypeCode { return TypeSystemCapabilities }

// System returns the supported-capability booleans.
func (v SystemCapabilities) System() CapabilitySet {
	return capabilitySet(v.SystemBits)
}

// Enabled returns the enabled-capability booleans.
func (v SystemCapabilities) Enabled() CapabilitySet {
	return capabilitySet(v.EnabledBits)
}

func (v SystemCapabilities) Fields() map[string]any {
	return map[string]any{
		"system_capabilities":  v.System(),
		"enabled_capabilities": v.Enabled(),
	}
}

func decodeSystemCapabilities(rec Record) (Value, error) {
	if err := checkLength(rec, 4, 4); err != nil {
		return nil, err
	}
	return SystemCapabilities{
		SystemBits:  binary.BigEndian.Uint16(rec.Value[0:2]),
		EnabledBits: binary.BigEndian.Uint16(rec.Value[2:4]),
	}, nil
}
