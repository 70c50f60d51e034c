package pmsnappy

// Session is the permessage-snappy extension state for one WebSocket
// connection. It owns two independent compression contexts, one per
// direction; each context either persists across messages or is replaced
// at every message boundary, depending on the negotiated
// no-context-takeover flags.
//
// A Session is owned exclusively by its connection and is not safe for
// concurrent use. The transport must call Start*Message before any
// *MessageData call for that message, and End*Message after the last one.
type Session struct {
	isServer             bool
	s2cNoContextTakeover bool
	c2sNoContextTakeover bool

	compressor   *compressor
	decompressor *decompressor
}

// NewSessionFromOfferAccept creates a session from an accepted offer. This
// is the server-side path, and the path a client takes when its own offer
// was accepted verbatim. isServer selects which side of the connection the
// session represents.
func NewSessionFromOfferAccept(isServer bool, accept *OfferAccept) *Session {
	return &Session{
		isServer:             isServer,
		s2cNoContextTakeover: accept.offer.RequestNoContextTakeover,
		c2sNoContextTakeover: accept.requestNoContextTakeover,
	}
}

// NewSessionFromResponseAccept creates a session from an accepted server
// response. This is the client-side path. Both factory paths resolve to
// the same two directional flags, so the session's runtime behavior does
// not depend on how negotiation happened.
func NewSessionFromResponseAccept(isServer bool, accept *ResponseAccept) *Session {
	return &Session{
		isServer:             isServer,
		s2cNoContextTakeover: accept.response.S2CNoContextTakeover,
		c2sNoContextTakeover: accept.response.C2SNoContextTakeover,
	}
}

// outboundNoContextTakeover returns the flag governing the direction this
// side compresses: s2c for a server, c2s for a client.
func (s *Session) outboundNoContextTakeover() bool {
	if s.isServer {
		return s.s2cNoContextTakeover
	}
	return s.c2sNoContextTakeover
}

// inboundNoContextTakeover returns the flag governing the direction this
// side decompresses, the mirror of outboundNoContextTakeover.
func (s *Session) inboundNoContextTakeover() bool {
	if s.isServer {
		return s.c2sNoContextTakeover
	}
	return s.s2cNoContextTakeover
}

// StartCompressMessage begins an outgoing message. The compression context
// is created on first use and replaced here when the negotiated flags
// disable context takeover for this direction. Resetting happens at
// message start rather than message end: whether a reset is due is only
// knowable before the next message, and there might not be one.
func (s *Session) StartCompressMessage() {
	if s.compressor == nil || s.outboundNoContextTakeover() {
		s.compressor = newCompressor()
	}
}

// CompressMessageData compresses one chunk of the current outgoing
// message and returns the corresponding frames. Messages may be fed in
// any number of chunks between StartCompressMessage and
// EndCompressMessage.
func (s *Session) CompressMessageData(chunk []byte) ([]byte, error) {
	return s.compressor.compress(chunk)
}

// EndCompressMessage finalizes the current outgoing message. The snappy
// framing format needs no per-message trailer, so the returned flush is
// always empty. The context is deliberately left alone; if a reset is due
// it happens at the next StartCompressMessage.
func (s *Session) EndCompressMessage() []byte {
	return nil
}

// StartDecompressMessage begins an incoming message, replacing the
// decompression context under the same rules as StartCompressMessage but
// keyed by the opposite direction's flag.
func (s *Session) StartDecompressMessage() {
	if s.decompressor == nil || s.inboundNoContextTakeover() {
		s.decompressor = newDecompressor()
	}
}

// DecompressMessageData decompresses one chunk of the current incoming
// message. Chunks may split the underlying stream at arbitrary byte
// positions; data belonging to an incomplete frame is buffered until the
// rest arrives, so a call may legitimately return no output.
func (s *Session) DecompressMessageData(chunk []byte) ([]byte, error) {
	return s.decompressor.decompress(chunk)
}

// EndDecompressMessage finalizes the current incoming message. It is a
// no-op for this extension.
func (s *Session) EndDecompressMessage() {}
