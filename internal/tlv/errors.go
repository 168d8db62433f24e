package tlv

import "fmt"

// TruncatedError reports fewer bytes available than a header or a declared
// length requires. Offsets are relative to the start of the buffer being
// walked (the LLDPDU payload for the scanner, the TLV value for inner
// structures such as ManagementAddress).
type TruncatedError struct {
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

// LengthError reports a recognized TLV whose value length falls outside the
// bounds defined for its type.
type LengthError struct {
	Code   TypeCode
	Length int
	Min    int
	Max    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s value length %d outside %d..%d", e.Code, e.Length, e.Min, e.Max)
}

// FieldError reports a length-valid TLV whose content violates a semantic
// rule, such as a reserved interface numbering subtype paired with a nonzero
// interface number.
type FieldError struct {
	Code   TypeCode
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s field %s: %s", e.Code, e.Field, e.Reason)
}

// EncodingError reports a field whose bytes cannot be interpreted under the
// encoding its type declares.
type EncodingError struct {
	Code     TypeCode
	Field    string
	Encoding string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s field %s is not valid %s", e.Code, e.Field, e.Encoding)
}
