package frame

import (
	"encoding/hex"
	"errors"
	"testing"

	"gitlab.com/d21d3q/golldp/internal/tlv"
)

func TestValidate(t *testing.T) {
	raw := decodeHex(t, "0180c200000e001b21aabbcc88cc02070400112233445500000000")
	env, payload, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := env.Destination.String(); got != "01:80:c2:00:00:0e" {
		t.Fatalf("destination mismatch: %s", got)
	}
	if got := env.Source.String(); got != "00:1b:21:aa:bb:cc" {
		t.Fatalf("source mismatch: %s", got)
	}
	if env.EtherType != EtherType {
		t.Fatalf("unexpected EtherType 0x%04X", env.EtherType)
	}
	if len(payload) != len(raw)-HeaderLength {
		t.Fatalf("payload length mismatch: %d", len(payload))
	}
}

func TestValidateOtherEtherType(t *testing.T) {
	// An IPv4 frame must be skipped, not reported as a decode failure.
	raw := decodeHex(t, "0180c200000e001b21aabbcc080045000000")
	_, _, err := Validate(raw)
	if !errors.Is(err, ErrNotLLDP) {
		t.Fatalf("expected ErrNotLLDP, got %v", err)
	}
}

func TestValidateWrongDestination(t *testing.T) {
	raw := decodeHex(t, "ffffffffffff001b21aabbcc88cc0000")
	_, _, err := Validate(raw)
	if !errors.Is(err, ErrNotLLDP) {
		t.Fatalf("expected ErrNotLLDP, got %v", err)
	}
}

func TestValidateShortFrame(t *testing.T) {
	_, _, err := Validate(decodeHex(t, "0180c200000e"))
	var trunc *tlv.TruncatedError
	if !errors.As(err, &trunc) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
	if trunc.Need != HeaderLength || trunc.Have != 6 {
		t.Fatalf("unexpected truncation detail: %+v", trunc)
	}
}

func TestValidateDoesNotAliasInput(t *testing.T) {
	raw := decodeHex(t, "0180c200000e001b21aabbcc88cc")
	env, _, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	raw[6] = 0xFF
	if got := env.Source.String(); got != "00:1b:21:aa:bb:cc" {
		t.Fatalf("envelope aliases the input buffer: %s", got)
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex decode: %v", err)
	}
	return b
}
