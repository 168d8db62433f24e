package golldp

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"gitlab.com/d21d3q/golldp/internal/frame"
	_ "gitlab.com/d21d3q/golldp/internal/org/ieee8021" // register org handler
	_ "gitlab.com/d21d3q/golldp/internal/org/lldpmed"  // register org handler
	"gitlab.com/d21d3q/golldp/internal/tlv"
)

// ErrNotLLDP reports a frame carrying some other protocol. Callers should
// skip the frame rather than treat it as a failure.
var ErrNotLLDP = frame.ErrNotLLDP

// Frame is the decoded contents of one LLDP frame. TLVs keeps wire order,
// including duplicate types when a peer sends them.
type Frame struct {
	Envelope frame.Envelope
	TLVs     []tlv.Value
}

// Decode validates the Ethernet envelope of raw and decodes every TLV in
// the LLDPDU. Non-LLDP frames return ErrNotLLDP; truncations, out-of-bounds
// lengths and semantic field violations abort the frame with a typed error
// from the tlv package. Decoding is a pure function of raw: the same bytes
// always yield the same frame, and the result does not alias the input.
func Decode(raw []byte) (Frame, error) {
	env, payload, err := frame.Validate(raw)
	if err != nil {
		return Frame{}, err
	}
	// Decoded values keep slices into the payload, so copy once up front
	// rather than per TLV.
	payload = append([]byte(nil), payload...)

	var values []tlv.Value
	sc := tlv.NewScanner(payload)
	for sc.Scan() {
		v, err := tlv.Decode(sc.Record())
		if err != nil {
			return Frame{}, err
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return Frame{}, err
	}
	return Frame{Envelope: env, TLVs: values}, nil
}

// Result captures the outcome of AnalyzeHex.
type Result struct {
	RawHex      string
	ByteCount   int
	Source      string
	Destination string
	TLVs        []map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"raw_hex":     r.RawHex,
		"byte_count":  r.ByteCount,
		"source":      r.Source,
		"destination": r.Destination,
		"tlvs":        r.TLVs,
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("source:%s bytes:%d raw:%s (marshal error: %v)", r.Source, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// AnalyzeHex decodes a hex-encoded frame and returns per-TLV field maps.
// The reader tolerates whitespace, separator characters and a 0x prefix,
// the formats hex dumps usually arrive in.
func AnalyzeHex(raw string) (Result, error) {
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	decoded, err := Decode(data)
	if err != nil {
		return Result{}, err
	}
	result := Result{
		RawHex:      strings.ToUpper(stripSeparators(raw)),
		ByteCount:   len(data),
		Source:      decoded.Envelope.Source.String(),
		Destination: decoded.Envelope.Destination.String(),
		TLVs:        make([]map[string]any, 0, len(decoded.TLVs)),
	}
	for _, v := range decoded.TLVs {
		result.TLVs = append(result.TLVs, Summary(v))
	}
	return result, nil
}

// Summary renders one decoded TLV as its field map plus a "_type" tag.
func Summary(v tlv.Value) map[string]any {
	fields := v.Fields()
	out := make(map[string]any, len(fields)+1)
	for k, val := range fields {
		out[k] = val
	}
	out["_type"] = v.Code().String()
	return out
}

func decodeHex(input string) ([]byte, error) {
	clean := stripSeparators(input)
	if strings.HasPrefix(clean, "0X") || strings.HasPrefix(clean, "0x") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex frame must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripSeparators(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' || r == ':' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
