package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Value is a decoded TLV payload. Fields renders the semantic content as a
// flat map for logging and JSON output, mirroring wire field names.
type Value interface {
	Code() TypeCode
	Fields() map[string]any
}

var decoders = map[TypeCode]func(Record) (Value, error){
	TypeEndOfLLDPDU:        decodeEndOfLLDPDU,
	TypeChassisID:          decodeChassisID,
	TypePortID:             decodePortID,
	TypeTimeToLive:         decodeTimeToLive,
	TypePortDescription:    decodePortDescription,
	TypeSystemName:         decodeSystemName,
	TypeSystemDescription:  decodeSystemDescription,
	TypeSystemCapabilities: decodeSystemCapabilities,
	TypeManagementAddress:  decodeManagementAddress,
	TypeOrgSpecific:        decodeOrgSpecific,
}

// Decode dispatches a record to the decoder for its type code. Codes
// without a decoder (the reserved range 9..126 and anything undefined)
// produce an Unimplemented value and never fail, so one exotic TLV cannot
// abort decoding of the rest of the frame.
func Decode(rec Record) (Value, error) {
	if fn, ok := decoders[rec.Code]; ok {
		return fn(rec)
	}
	return Unimplemented{TypeCode: rec.Code, Length: rec.Length, Value: rec.Value}, nil
}

// Unimplemented carries a TLV whose type code has no decoder, verbatim.
type Unimplemented struct {
	TypeCode TypeCode
	Length   int
	Value    []byte
}

func (u Unimplemented) Code() TypeCode { return u.TypeCode }

func (u Unimplemented) Fields() map[string]any {
	return map[string]any{
		"unimplemented": true,
		"code":          int(u.TypeCode),
		"length":        u.Length,
		"value":         hex.EncodeToString(u.Value),
	}
}

func checkLength(rec Record, min, max int) error {
	if len(rec.Value) < min || len(rec.Value) > max {
		return &LengthError{Code: rec.Code, Length: len(rec.Value), Min: min, Max: max}
	}
	return nil
}

func decodeText(code TypeCode, b []byte, field string) (string, error) {
	if !utf8.Valid(b) {
		return "", &EncodingError{Code: code, Field: field, Encoding: "UTF-8"}
	}
	return string(b), nil
}

// colonHex renders bytes as lower-case hex octets separated by colons, the
// conventional MAC/OUI display format.
func colonHex(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, ":")
}
