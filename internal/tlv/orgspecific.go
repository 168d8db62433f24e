package tlv

import (
	"encoding/hex"

	"gitlab.com/d21d3q/golldp/internal/org"
)

// OrgSpecific is a type-127 TLV: a 3-byte OUI, an organization-defined
// subtype and an opaque payload. When a handler is registered for the OUI
// its decoded detail is carried alongside the raw payload; a missing or
// uninterested handler leaves Detail nil and never fails the frame.
type OrgSpecific struct {
	OUI     org.OUI
	Subtype uint8
	Info    []byte
	Detail  map[string]any
}

func (OrgSpecific) Code() TypeCode { return TypeOrgSpecific }

// OUIString renders the OUI in the conventional colon-hex form.
func (v OrgSpecific) OUIString() string {
	return colonHex(v.OUI[:])
}

func (v OrgSpecific) Fields() map[string]any {
	fields := map[string]any{
		"oui":         v.OUIString(),
		"org_subtype": int(v.Subtype),
		"org_info":    hex.EncodeToString(v.Info),
	}
	for k, val := range v.Detail {
		fields[k] = val
	}
	return fields
}

const (
	orgSpecificMinLength = 4
	orgSpecificMaxLength = 511
)

func decodeOrgSpecific(rec Record) (Value, error) {
	if err := checkLength(rec, orgSpecificMinLength, orgSpecificMaxLength); err != nil {
		return nil, err
	}
	var oui org.OUI
	copy(oui[:], rec.Value[0:3])
	subtype := rec.Value[3]
	info := rec.Value[4:]

	detail, _ := org.Decode(oui, subtype, info)
	return OrgSpecific{
		OUI:     oui,
		Subtype: subtype,
		Info:    info,
		Detail:  detail,
	}, nil
}
