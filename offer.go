package pmsnappy

// Offer is the set of permessage-snappy parameters offered by a client to
// a server. An Offer is immutable once constructed.
//
// The wire parameter names describe traffic direction, not the sending
// side: the client advertises its own willingness to reset its compression
// context under c2s_no_context_takeover (it compresses the client-to-server
// direction) and asks the server to reset under s2c_no_context_takeover.
type Offer struct {
	// AcceptNoContextTakeover is true if the client accepts the
	// "no context takeover" feature for its own direction.
	AcceptNoContextTakeover bool

	// RequestNoContextTakeover is true if the client requests the
	// "no context takeover" feature from the server.
	RequestNoContextTakeover bool
}

// ParseOffer parses a permessage-snappy extension offer provided by a
// client to a server. Absent parameters default to false.
func ParseOffer(params Params) (*Offer, error) {
	flags, err := validateParams(params)
	if err != nil {
		return nil, err
	}
	return &Offer{
		AcceptNoContextTakeover:  flags.c2sNoContextTakeover,
		RequestNoContextTakeover: flags.s2cNoContextTakeover,
	}, nil
}

// ExtensionString returns the extension configuration string as sent to
// the server in Sec-WebSocket-Extensions. Parameter order is fixed so the
// rendering is canonical.
func (o *Offer) ExtensionString() string {
	s := ExtensionName
	if o.AcceptNoContextTakeover {
		s += "; " + paramC2SNoContextTakeover
	}
	if o.RequestNoContextTakeover {
		s += "; " + paramS2CNoContextTakeover
	}
	return s
}

// OfferAccept is the set of parameters with which a server accepts a
// permessage-snappy offer from a client.
type OfferAccept struct {
	offer                    *Offer
	requestNoContextTakeover bool
}

// NewOfferAccept accepts an offer on behalf of a server. If
// requestNoContextTakeover is true the server asks the client to reset its
// compression context on every message; this is only valid when the offer
// advertised AcceptNoContextTakeover, since a server must never request a
// behavior the client did not declare support for. Violations return
// ErrInvalidAcceptParameter.
func NewOfferAccept(offer *Offer, requestNoContextTakeover bool) (*OfferAccept, error) {
	if offer == nil {
		return nil, ErrInvalidAcceptParameter
	}
	if requestNoContextTakeover && !offer.AcceptNoContextTakeover {
		return nil, ErrInvalidAcceptParameter
	}
	return &OfferAccept{
		offer:                    offer,
		requestNoContextTakeover: requestNoContextTakeover,
	}, nil
}

// Offer returns the offer being accepted.
func (a *OfferAccept) Offer() *Offer {
	return a.offer
}

// RequestNoContextTakeover reports whether the server requests the
// "no context takeover" feature from the client.
func (a *OfferAccept) RequestNoContextTakeover() bool {
	return a.requestNoContextTakeover
}

// ExtensionString returns the extension configuration string as sent to
// the client in Sec-WebSocket-Extensions. The flag carried over from the
// offer renders before the server's own request.
func (a *OfferAccept) ExtensionString() string {
	s := ExtensionName
	if a.offer.RequestNoContextTakeover {
		s += "; " + paramS2CNoContextTakeover
	}
	if a.requestNoContextTakeover {
		s += "; " + paramC2SNoContextTakeover
	}
	return s
}
