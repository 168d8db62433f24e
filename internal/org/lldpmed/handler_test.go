package lldpmed

import "testing"

func TestDecodeNetworkPolicy(t *testing.T) {
	fields := Handler{}.Decode(subtypeNetworkPolicy, []byte{0x01, 0x00, 0x64})
	if fields == nil {
		t.Fatal("expected decoded fields")
	}
	if fields["voice_vlan"] != 100 {
		t.Fatalf("unexpected voice VLAN: %v", fields["voice_vlan"])
	}
}

func TestDecodeZeroVLANStaysOpaque(t *testing.T) {
	if fields := (Handler{}).Decode(subtypeNetworkPolicy, []byte{0x01, 0x00, 0x00}); fields != nil {
		t.Fatalf("zero VLAN should stay opaque, got %v", fields)
	}
}

func TestDecodeOtherSubtype(t *testing.T) {
	if fields := (Handler{}).Decode(1, []byte{0x01, 0x00, 0x64}); fields != nil {
		t.Fatalf("unexpected fields: %v", fields)
	}
}
