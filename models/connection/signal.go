package connection

const (
	CodeCreateBoard uint8 = iota
	CodeFire
	CodeRender
	CodeBoardStatus
	CodeTerminateBoard

	// Sent after a fire that sinks the last ship
	CodeFleetSunk

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

// Signal is the code of an incoming message decoded ahead of its
// payload. Code is nil when the message carries no "code" field,
// so CodeCreateBoard is not mistaken for an absent code.
type Signal struct {
	Code *uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: &code}
}

func (s Signal) IsAbsent() bool {
	return s.Code == nil
}
