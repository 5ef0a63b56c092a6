// Package nullbackend is a peejay.Backend that discards every callback.
// It is useful for validate-only parsing (spec §6.6 "validate" CLI
// command) and for benchmarking the parser without backend overhead.
package nullbackend

// Backend implements peejay.Backend[struct{}] by doing nothing.
type Backend struct{}

// New returns a Backend.
func New() *Backend { return &Backend{} }

func (*Backend) BeginArray() error           { return nil }
func (*Backend) EndArray() error             { return nil }
func (*Backend) BeginObject() error          { return nil }
func (*Backend) Key(key []byte) error        { return nil }
func (*Backend) EndObject() error            { return nil }
func (*Backend) StringValue(s []byte) error  { return nil }
func (*Backend) IntegerValue(v int64) error  { return nil }
func (*Backend) DoubleValue(v float64) error { return nil }
func (*Backend) BooleanValue(v bool) error   { return nil }
func (*Backend) NullValue() error            { return nil }

// Result returns an empty struct; validation success/failure is carried
// entirely by the parser's own error, not by this backend's Result.
func (*Backend) Result() (struct{}, error) { return struct{}{}, nil }
