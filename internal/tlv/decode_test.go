package tlv

import (
	"errors"
	"testing"
)

func record(code TypeCode, value []byte) Record {
	return Record{Code: code, Length: len(value), Value: value}
}

func TestDecodeChassisIDMAC(t *testing.T) {
	v, err := Decode(record(TypeChassisID, decodeHex(t, "04aabbccddeeff")))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	chassis, ok := v.(ChassisID)
	if !ok {
		t.Fatalf("unexpected value type %T", v)
	}
	if chassis.Subtype != ChassisIDSubtypeMACAddress {
		t.Fatalf("unexpected subtype %d", chassis.Subtype)
	}
	if got := chassis.Subtype.String(); got != "MAC address" {
		t.Fatalf("unexpected subtype name %q", got)
	}
	if got := chassis.IDString(); got != "aa:bb:cc:dd:ee:ff" {
		t.Fatalf("unexpected id %q", got)
	}
}

func TestDecodeChassisIDPlainHex(t *testing.T) {
	v, err := Decode(record(TypeChassisID, decodeHex(t, "07aabbccddeeff")))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	chassis := v.(ChassisID)
	if got := chassis.IDString(); got != "aabbccddeeff" {
		t.Fatalf("unexpected id %q", got)
	}
	if got := chassis.Subtype.String(); got != "Locally assigned" {
		t.Fatalf("unexpected subtype name %q", got)
	}
}

func TestDecodeChassisIDTooShort(t *testing.T) {
	// Six bytes cannot hold the subtype plus the fixed 6-byte identifier.
	_, err := Decode(record(TypeChassisID, decodeHex(t, "04aabbccddee")))
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LengthError, got %v", err)
	}
	if lerr.Code != TypeChassisID || lerr.Length != 6 || lerr.Min != 7 {
		t.Fatalf("unexpected length detail: %+v", lerr)
	}
}

func TestDecodePortID(t *testing.T) {
	v, err := Decode(record(TypePortID, append([]byte{0x05}, "Gi1/0/24"...)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	port := v.(PortID)
	if port.Subtype != PortIDSubtypeInterfaceName || port.ID != "Gi1/0/24" {
		t.Fatalf("unexpected port id: %+v", port)
	}
}

func TestDecodePortIDBadUTF8(t *testing.T) {
	_, err := Decode(record(TypePortID, []byte{0x05, 0xFF, 0xFE}))
	var eerr *EncodingError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected EncodingError, got %v", err)
	}
	if eerr.Field != "port_id" {
		t.Fatalf("unexpected field %q", eerr.Field)
	}
}

func TestDecodePortIDEmpty(t *testing.T) {
	_, err := Decode(record(TypePortID, nil))
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LengthError, got %v", err)
	}
}

func TestDecodeEndOfLLDPDU(t *testing.T) {
	v, err := Decode(record(TypeEndOfLLDPDU, nil))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := v.(EndOfLLDPDU); !ok {
		t.Fatalf("unexpected value type %T", v)
	}

	_, err = Decode(record(TypeEndOfLLDPDU, []byte{0x00}))
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LengthError for nonzero length, got %v", err)
	}
}

func TestDecodeTimeToLive(t *testing.T) {
	v, err := Decode(record(TypeTimeToLive, decodeHex(t, "0078")))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ttl := v.(TimeToLive); ttl.Seconds != 120 {
		t.Fatalf("unexpected TTL %d", ttl.Seconds)
	}

	_, err = Decode(record(TypeTimeToLive, decodeHex(t, "78")))
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LengthError, got %v", err)
	}
}

func TestDecodeTextTLVs(t *testing.T) {
	cases := []struct {
		code  TypeCode
		field string
	}{
		{TypePortDescription, "port_description"},
		{TypeSystemName, "system_name"},
		{TypeSystemDescription, "system_description"},
	}
	for _, tc := range cases {
		v, err := Decode(record(tc.code, []byte("uplink")))
		if err != nil {
			t.Fatalf("%s: %v", tc.code, err)
		}
		if got := v.Fields()[tc.field]; got != "uplink" {
			t.Fatalf("%s: unexpected field value %v", tc.code, got)
		}

		// Empty text is valid for all three.
		if _, err := Decode(record(tc.code, nil)); err != nil {
			t.Fatalf("%s empty: %v", tc.code, err)
		}

		_, err = Decode(record(tc.code, []byte{0xC3, 0x28}))
		var eerr *EncodingError
		if !errors.As(err, &eerr) {
			t.Fatalf("%s: expected EncodingError, got %v", tc.code, err)
		}
	}
}

func TestDecodeSystemCapabilities(t *testing.T) {
	// system=0x0014 (Bridge, Router), enabled=0x0004 (Bridge).
	v, err := Decode(record(TypeSystemCapabilities, decodeHex(t, "00140004")))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	caps := v.(SystemCapabilities)
	system := caps.System()
	if !system["Bridge"] || !system["Router"] {
		t.Fatalf("expected Bridge and Router supported: %v", system)
	}
	if system["Other"] || system["Repeater"] || system["WLAN AP"] ||
		system["Telephone"] || system["DOCSIS cable device"] || system["Station only"] {
		t.Fatalf("unexpected supported bits: %v", system)
	}
	enabled := caps.Enabled()
	if !enabled["Bridge"] || enabled["Router"] {
		t.Fatalf("expected only Bridge enabled: %v", enabled)
	}

	_, err = Decode(record(TypeSystemCapabilities, decodeHex(t, "0014")))
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LengthError, got %v", err)
	}
}

func TestDecodeOrgSpecific(t *testing.T) {
	v, err := Decode(record(TypeOrgSpecific, decodeHex(t, "00112201deadbeef")))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	orgTLV := v.(OrgSpecific)
	if got := orgTLV.OUIString(); got != "00:11:22" {
		t.Fatalf("unexpected OUI %q", got)
	}
	if orgTLV.Subtype != 1 || len(orgTLV.Info) != 4 {
		t.Fatalf("unexpected org TLV: %+v", orgTLV)
	}
	if orgTLV.Detail != nil {
		t.Fatalf("unknown OUI should carry no detail: %v", orgTLV.Detail)
	}

	_, err = Decode(record(TypeOrgSpecific, decodeHex(t, "001122")))
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LengthError, got %v", err)
	}
}

func TestDecodeUnknownCode(t *testing.T) {
	for _, code := range []TypeCode{9, 42, 126} {
		v, err := Decode(record(code, decodeHex(t, "abcd")))
		if err != nil {
			t.Fatalf("code %d: %v", code, err)
		}
		u, ok := v.(Unimplemented)
		if !ok {
			t.Fatalf("code %d: unexpected value type %T", code, v)
		}
		if u.TypeCode != code || u.Length != 2 {
			t.Fatalf("code %d: unexpected record %+v", code, u)
		}
		fields := u.Fields()
		if fields["unimplemented"] != true || fields["value"] != "abcd" {
			t.Fatalf("code %d: unexpected fields %v", code, fields)
		}
	}
}
