// Package pmsnappy implements the permessage-snappy WebSocket extension:
// negotiation of the extension parameters exchanged during the HTTP upgrade
// handshake, and the per-connection compression state that results from a
// successful negotiation.
//
// The extension follows the offer/accept negotiation pattern of RFC 6455,
// section 9.1. A client sends an offer, the server either accepts it or
// answers with its own response, and the client confirms. Each step is a
// value object in this package:
//
//   - Offer: parameters offered by a client to a server
//   - OfferAccept: the server's acceptance of an Offer
//   - Response: parameters responded by a server to a client
//   - ResponseAccept: the client's acceptance of a Response
//
// Parameter parsing consumes the output of a Sec-WebSocket-Extensions
// header parser as a Params mapping; this package validates the parameters
// semantically but does not parse raw header bytes.
//
// Server Example:
//
//	offer, err := pmsnappy.ParseOffer(params)
//	if err != nil {
//	    // malformed offer, use the connection without compression
//	}
//	accept, err := pmsnappy.NewOfferAccept(offer, true)
//	if err != nil {
//	    // client did not advertise no-context-takeover support
//	}
//	respondWith(accept.ExtensionString())
//	session := pmsnappy.NewSessionFromOfferAccept(true, accept)
//
// Client Example:
//
//	response, err := pmsnappy.ParseResponse(params)
//	if err != nil {
//	    // malformed response, use the connection without compression
//	}
//	accept, err := pmsnappy.NewResponseAccept(response)
//	if err != nil {
//	    return err
//	}
//	session := pmsnappy.NewSessionFromResponseAccept(false, accept)
//
// A Session is owned by exactly one connection. The transport drives it at
// message boundaries:
//
//	session.StartCompressMessage()
//	out, err := session.CompressMessageData(payload)
//	trailer := session.EndCompressMessage()
//
// and symmetrically for decompression. Messages may arrive fragmented;
// CompressMessageData and DecompressMessageData may be called any number of
// times between the matching start and end calls. Sessions are not safe for
// concurrent use.
package pmsnappy
