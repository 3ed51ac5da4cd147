package notify

import "safesignal/internal/domain"

// Template holds the user-facing texts for one event mode: the push
// title/body sent to the device and the acknowledgement returned to
// the caller.
type Template struct {
	Title string
	Body  string
	Ack   string
}

// Templates selects texts by event mode. Discreet mode deliberately
// disguises both the push and the acknowledgement as a benign content
// notice so a nearby observer of the device learns nothing; the event
// and notification semantics underneath are identical.
type Templates map[domain.EventMode]Template

func DefaultTemplates() Templates {
	return Templates{
		domain.ModeNormal: {
			Title: "Emergency alert",
			Body:  "An SOS was triggered from your account. Responders and your contacts are being notified.",
			Ack:   "SOS received. Your emergency contacts are being notified.",
		},
		domain.ModeDiscreet: {
			Title: "New content available",
			Body:  "Your feed has been refreshed. Open the app to see what's new.",
			Ack:   "Content updated.",
		},
	}
}

// For falls back to the normal-mode template for unknown modes.
func (t Templates) For(mode domain.EventMode) Template {
	if tpl, ok := t[mode]; ok {
		return tpl
	}
	return t[domain.ModeNormal]
}
