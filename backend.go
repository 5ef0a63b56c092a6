package peejay

// Backend is the typed event sink a Parser drives, per spec §6.1. Every
// method returns an error; a non-nil return is fatal and becomes the
// parser's sticky error, wrapped so that errors.Is(err, peejay.ErrBackend)
// reports true. It is not a *peejay.Error and carries no ErrorCode.
//
// A Backend is not required to be safe for concurrent use: a Parser drives
// exactly one Backend, strictly sequentially, in document order (spec §5).
type Backend[Output any] interface {
	BeginArray() error
	EndArray() error
	BeginObject() error
	// Key receives the decoded UTF-8 bytes of an object key. The slice is
	// only valid for the duration of the call (spec §5 "Shared
	// resources"); a Backend that needs to retain it must copy.
	Key(key []byte) error
	EndObject() error
	// StringValue receives the decoded UTF-8 bytes of a string value,
	// with the same borrowed-lifetime rule as Key.
	StringValue(s []byte) error
	IntegerValue(v int64) error
	DoubleValue(v float64) error
	BooleanValue(v bool) error
	NullValue() error
	// Result is called once, by Eof, after the matcher stack has fully
	// unwound.
	Result() (Output, error)
}
