package enums

// SessionState is the state of the identity manager
type SessionState struct{ enumValue }

// session states
var (
	SessionStateAnonymous      = SessionState{enumValue{name: "anonymous", value: int(sessionStateAnonymous)}}
	SessionStateAuthenticating = SessionState{enumValue{name: "authenticating", value: int(sessionStateAuthenticating)}}
	SessionStateAuthenticated  = SessionState{enumValue{name: "authenticated", value: int(sessionStateAuthenticated)}}
)

func (e SessionState) String() string { return e.name }

// MarshalText implements encoding.TextMarshaler
func (e SessionState) MarshalText() ([]byte, error) { return []byte(e.name), nil }
