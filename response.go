package pmsnappy

// Response is the set of permessage-snappy parameters responded by a
// server to a client. Unlike an Offer, both flags are independent wire
// parameters with no directional renaming: the response states what each
// direction of the established connection will do.
type Response struct {
	// C2SNoContextTakeover is true if the client-to-server direction
	// resets its compression context on every message.
	C2SNoContextTakeover bool

	// S2CNoContextTakeover is true if the server-to-client direction
	// resets its compression context on every message.
	S2CNoContextTakeover bool
}

// ParseResponse parses a permessage-snappy extension response provided by
// a server to a client. Absent parameters default to false.
func ParseResponse(params Params) (*Response, error) {
	flags, err := validateParams(params)
	if err != nil {
		return nil, err
	}
	return &Response{
		C2SNoContextTakeover: flags.c2sNoContextTakeover,
		S2CNoContextTakeover: flags.s2cNoContextTakeover,
	}, nil
}

// ResponseAccept is the client's acceptance of a server Response.
// Accepting a parsed response is unconditional; it carries no flags of
// its own.
type ResponseAccept struct {
	response *Response
}

// NewResponseAccept accepts a response on behalf of a client. The response
// must be a parsed Response; a nil response returns ErrInvalidResponse.
func NewResponseAccept(response *Response) (*ResponseAccept, error) {
	if response == nil {
		return nil, ErrInvalidResponse
	}
	return &ResponseAccept{response: response}, nil
}

// Response returns the response being accepted.
func (a *ResponseAccept) Response() *Response {
	return a.response
}
