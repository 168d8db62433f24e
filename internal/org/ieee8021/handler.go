// Package ieee8021 decodes the IEEE 802.1 organizationally specific TLVs
// (OUI 00:80:c2) that carry VLAN assignments.
package ieee8021

import (
	"encoding/binary"
	"fmt"

	"gitlab.com/d21d3q/golldp/internal/org"
)

const (
	subtypePortVLANID = 1
	subtypeVLANName   = 3
)

func init() {
	org.Register(org.OUI{0x00, 0x80, 0xC2}, Handler{})
}

// Handler implements org.Handler for the IEEE 802.1 OUI.
type Handler struct{}

// Name returns the canonical handler name.
func (Handler) Name() string { return "ieee802.1" }

// Decode interprets the Port VLAN ID and VLAN Name subtypes. Other
// subtypes, and malformed payloads, return nil so the TLV stays opaque.
func (Handler) Decode(subtype uint8, info []byte) map[string]any {
	switch subtype {
	case subtypePortVLANID:
		if len(info) < 2 {
			return nil
		}
		return map[string]any{
			"port_vlan_id": int(binary.BigEndian.Uint16(info[:2])),
		}
	case subtypeVLANName:
		names := vlanNames(info)
		if len(names) == 0 {
			return nil
		}
		return map[string]any{"vlan_names": names}
	default:
		return nil
	}
}

// vlanNames walks the repeated [2-byte VLAN ID][1-byte length][name] layout,
// stopping at the first entry that overruns the payload.
func vlanNames(info []byte) []string {
	var names []string
	for len(info) >= 3 {
		id := binary.BigEndian.Uint16(info[0:2])
		nameLen := int(info[2])
		if len(info) < 3+nameLen {
			break
		}
		names = append(names, fmt.Sprintf("%d=%s", id, info[3:3+nameLen]))
		info = info[3+nameLen:]
	}
	return names
}
