package errcode

// Error code convention:
// - 0: no error
// - 4xxx: recoverable per-item outcomes (the batch continues)
type Code int

const (
	OK            Code = 0
	DeviceUnknown Code = 4004
	RenderFailed  Code = 4102
	EncodeFailed  Code = 4103
)
