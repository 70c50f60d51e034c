package pmsnappy

// Config is the deployment-facing configuration for the permessage-snappy
// extension, designed to be decoded from a yaml configuration file. The
// flags use the conventional server/client naming; they map onto the
// directional wire parameters through Offer and Accept.
type Config struct {
	Enabled                 bool `yaml:"enabled"`
	ServerNoContextTakeover bool `yaml:"server_no_context_takeover"`
	ClientNoContextTakeover bool `yaml:"client_no_context_takeover"`
}

// Offer builds the extension offer a client with this configuration sends
// during the handshake.
func (c *Config) Offer() *Offer {
	return &Offer{
		AcceptNoContextTakeover:  c.ClientNoContextTakeover,
		RequestNoContextTakeover: c.ServerNoContextTakeover,
	}
}

// Accept is the server-side accept policy for a parsed client offer. A
// configured client-side no-context-takeover is requested only when the
// offer advertised support for it; otherwise the accept degrades rather
// than failing the negotiation.
func (c *Config) Accept(offer *Offer) (*OfferAccept, error) {
	request := c.ClientNoContextTakeover && offer.AcceptNoContextTakeover
	return NewOfferAccept(offer, request)
}
