package pmsnappy

// Snapshot records are structured views of negotiation objects and
// sessions, intended for logging, diagnostics and test equality. They
// carry no behavioral contract and cannot be used to reconstruct the
// objects they describe.

// OfferSnapshot is a structured view of an Offer.
type OfferSnapshot struct {
	Extension                string
	AcceptNoContextTakeover  bool
	RequestNoContextTakeover bool
}

// Snapshot returns a structured view of the offer.
func (o *Offer) Snapshot() OfferSnapshot {
	return OfferSnapshot{
		Extension:                ExtensionName,
		AcceptNoContextTakeover:  o.AcceptNoContextTakeover,
		RequestNoContextTakeover: o.RequestNoContextTakeover,
	}
}

// OfferAcceptSnapshot is a structured view of an OfferAccept.
type OfferAcceptSnapshot struct {
	Extension                string
	Offer                    OfferSnapshot
	RequestNoContextTakeover bool
}

// Snapshot returns a structured view of the accept.
func (a *OfferAccept) Snapshot() OfferAcceptSnapshot {
	return OfferAcceptSnapshot{
		Extension:                ExtensionName,
		Offer:                    a.offer.Snapshot(),
		RequestNoContextTakeover: a.requestNoContextTakeover,
	}
}

// ResponseSnapshot is a structured view of a Response.
type ResponseSnapshot struct {
	Extension            string
	C2SNoContextTakeover bool
	S2CNoContextTakeover bool
}

// Snapshot returns a structured view of the response.
func (r *Response) Snapshot() ResponseSnapshot {
	return ResponseSnapshot{
		Extension:            ExtensionName,
		C2SNoContextTakeover: r.C2SNoContextTakeover,
		S2CNoContextTakeover: r.S2CNoContextTakeover,
	}
}

// ResponseAcceptSnapshot is a structured view of a ResponseAccept.
type ResponseAcceptSnapshot struct {
	Extension string
	Response  ResponseSnapshot
}

// Snapshot returns a structured view of the accept.
func (a *ResponseAccept) Snapshot() ResponseAcceptSnapshot {
	return ResponseAcceptSnapshot{
		Extension: ExtensionName,
		Response:  a.response.Snapshot(),
	}
}

// SessionSnapshot is a structured view of a Session's negotiated state.
type SessionSnapshot struct {
	Extension            string
	IsServer             bool
	S2CNoContextTakeover bool
	C2SNoContextTakeover bool
}

// Snapshot returns a structured view of the session's negotiated state.
func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		Extension:            ExtensionName,
		IsServer:             s.isServer,
		S2CNoContextTakeover: s.s2cNoContextTakeover,
		C2SNoContextTakeover: s.c2sNoContextTakeover,
	}
}
