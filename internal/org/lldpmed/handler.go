// Package lldpmed decodes the LLDP-MED organizationally specific TLVs
// (OUI 00:12:bb) advertised by phones and other media endpoints.
package lldpmed

import (
	"encoding/binary"

	"gitlab.com/d21d3q/golldp/internal/org"
)

const subtypeNetworkPolicy = 2

func init() {
	org.Register(org.OUI{0x00, 0x12, 0xBB}, Handler{})
}

// Handler implements org.Handler for the LLDP-MED OUI.
type Handler struct{}

// Name returns the canonical handler name.
func (Handler) Name() string { return "lldp-med" }

// Decode interprets the Network Policy subtype. The VLAN ID sits in the 12
// bits straddling the second and third policy octets; vendors vary in how
// they pack the surrounding flags, so a zero VLAN leaves the TLV opaque.
func (Handler) Decode(subtype uint8, info []byte) map[string]any {
	if subtype != subtypeNetworkPolicy || len(info) < 3 {
		return nil
	}
	vlan := binary.BigEndian.Uint16(info[1:3])
	if vlan == 0 {
		return nil
	}
	return map[string]any{"voice_vlan": int(vlan)}
}
