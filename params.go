package pmsnappy

// ExtensionName is the registered token for this extension, as it appears
// in the Sec-WebSocket-Extensions header.
const ExtensionName = "permessage-snappy"

// Extension parameter names per the permessage-snappy grammar. Both
// parameters are valueless flags: their presence means true.
const (
	paramC2SNoContextTakeover = "c2s_no_context_takeover"
	paramS2CNoContextTakeover = "s2c_no_context_takeover"
)

// Params holds extension parameters as decoded by an upstream
// Sec-WebSocket-Extensions header parser. Each name maps to the ordered
// values it appeared with; a parameter present without an "=value" part
// decodes as the boolean true.
type Params map[string][]any

// paramFlags is the validated flag set produced from a Params mapping.
type paramFlags struct {
	c2sNoContextTakeover bool
	s2cNoContextTakeover bool
}

// validateParams checks a decoded parameter mapping against the
// permessage-snappy grammar. Each recognized parameter may occur at most
// once and carries no value (the upstream parser encodes bare presence as
// the boolean true). The offer and response grammars recognize the same
// two parameters, so both parse paths share this validator.
func validateParams(params Params) (paramFlags, error) {
	var flags paramFlags
	for name, values := range params {
		if len(values) > 1 {
			return paramFlags{}, &ParameterError{Param: name, Err: ErrDuplicateParameter}
		}

		var value any
		if len(values) == 1 {
			value = values[0]
		}

		switch name {
		case paramC2SNoContextTakeover, paramS2CNoContextTakeover:
			b, ok := value.(bool)
			if !ok || !b {
				return paramFlags{}, &ParameterError{Param: name, Err: ErrIllegalParameterValue}
			}
			if name == paramC2SNoContextTakeover {
				flags.c2sNoContextTakeover = true
			} else {
				flags.s2cNoContextTakeover = true
			}
		default:
			return paramFlags{}, &ParameterError{Param: name, Err: ErrUnknownParameter}
		}
	}
	return flags, nil
}
