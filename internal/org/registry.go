package org

import "sync"

// OUI is the 3-byte organizationally unique identifier that prefixes every
// organizationally specific TLV.
type OUI [3]byte

// Handler decodes the organization-defined portion of a type-127 TLV for
// one OUI. Handlers return nil for subtypes they do not understand; they
// carry no error return because an organizational TLV must never fail the
// frame it rides in.
type Handler interface {
	Name() string
	Decode(subtype uint8, info []byte) map[string]any
}

var (
	regMu    sync.RWMutex
	registry = map[OUI]Handler{}
)

// Register stores a handler for an OUI. A later registration for the same
// OUI wins, which lets tests install fakes.
func Register(oui OUI, h Handler) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[oui] = h
}

// Lookup returns the handler registered for oui, if any.
func Lookup(oui OUI) (Handler, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	h, ok := registry[oui]
	return h, ok
}

// Decode runs the handler registered for oui. The second return is false
// when no handler is registered or the handler declined the subtype.
func Decode(oui OUI, subtype uint8, info []byte) (map[string]any, bool) {
	h, ok := Lookup(oui)
	if !ok {
		return nil, false
	}
	fields := h.Decode(subtype, info)
	if fields == nil {
		return nil, false
	}
	return fields, true
}
