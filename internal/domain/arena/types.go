package arena

// Identity is the static credential sent on every request.
type Identity struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type Heading int

const (
	HeadingUp Heading = iota
	HeadingRight
	HeadingDown
	HeadingLeft
)

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingRight:
		return "right"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	}
	return "unknown"
}

// Turn is a relative rotation, and doubles as the wire value
// posted to the rotate endpoint.
type Turn string

const (
	TurnLeft  Turn = "left"
	TurnRight Turn = "right"
)

// Apply returns the heading after turning 90 degrees.
func (t Turn) Apply(h Heading) Heading {
	switch t {
	case TurnRight:
		return (h + 1) % 4
	case TurnLeft:
		return (h + 3) % 4
	}
	return h
}

type ActionKind string

const (
	ActionRegister   ActionKind = "register"
	ActionUnregister ActionKind = "unregister"
	ActionMove       ActionKind = "move"
	ActionRotate     ActionKind = "rotate"
	ActionFire       ActionKind = "fire"
	ActionShield     ActionKind = "shield"
)

// FailureKind classifies why a dispatched request did not succeed.
type FailureKind string

const (
	FailureNetwork     FailureKind = "network"
	FailureRateLimited FailureKind = "rate_limited"
	FailureServer      FailureKind = "server"
	FailureClient      FailureKind = "client"
)

// OutcomeSuccess is the journal outcome for a completed request;
// failed requests journal their FailureKind instead.
const OutcomeSuccess = "success"
