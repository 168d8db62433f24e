package tlv

import "encoding/binary"

// EndOfLLDPDU marks the end of the TLV sequence. It carries no value.
type EndOfLLDPDU struct{}

func (EndOfLLDPDU) Code() TypeCode { return TypeEndOfLLDPDU }

func (EndOfLLDPDU) Fields() map[string]any {
	return map[string]any{"end_of_lldpdu": true}
}

func decodeEndOfLLDPDU(rec Record) (Value, error) {
	if err := checkLength(rec, 0, 0); err != nil {
		return nil, err
	}
	return EndOfLLDPDU{}, nil
}

// TimeToLive announces how long, in seconds, the receiver may keep the
// information from this frame.
type TimeToLive struct {
	Seconds uint16
}

func (TimeToLive) Code() TypeCode { return TypeTimeToLive }

func (v TimeToLive) Fields() map[string]any {
	return map[string]any{"ttl_seconds": int(v.Seconds)}
}

func decodeTimeToLive(rec Record) (Value, error) {
	if err := checkLength(rec, 2, 2); err != nil {
		return nil, err
	}
	return TimeToLive{Seconds: binary.BigEndian.Uint16(rec.Value)}, nil
}

const textMaxLength = 255

// PortDescription is the free-form description of the transmitting port.
type PortDescription struct {
	Text string
}

func (PortDescription) Code() TypeCode { return TypePortDescription }

func (v PortDescription) Fields() map[string]any {
	return map[string]any{"port_description": v.Text}
}

func decodePortDescription(rec Record) (Value, error) {
	if err := checkLength(rec, 0, textMaxLength); err != nil {
		return nil, err
	}
	text, err := decodeText(rec.Code, rec.Value, "port_description")
	if err != nil {
		return nil, err
	}
	return PortDescription{Text: text}, nil
}

// SystemName is the administratively assigned name of the device.
type SystemName struct {
	Name string
}

func (SystemName) Code() TypeCode { return TypeSystemName }

func (v SystemName) Fields() map[string]any {
	return map[string]any{"system_name": v.Name}
}

func decodeSystemName(rec Record) (Value, error) {
	if err := checkLength(rec, 0, textMaxLength); err != nil {
		return nil, err
	}
	name, err := decodeText(rec.Code, rec.Value, "system_name")
	if err != nil {
		return nil, err
	}
	return SystemName{Name: name}, nil
}

// SystemDescription carries platform, software and hardware details.
type SystemDescription struct {
	Text string
}

func (SystemDescription) Code() TypeCode { return TypeSystemDescription }

func (v SystemDescription) Fields() map[string]any {
	return map[string]any{"system_description": v.Text}
}

func decodeSystemDescription(rec Record) (Value, error) {
	if err := checkLength(rec, 0, textMaxLength); err != nil {
		return nil, err
	}
	text, err := decodeText(rec.Code, rec.Value, "system_description")
	if err != nil {
		return nil, err
	}
	return SystemDescription{Text: text}, nil
}
