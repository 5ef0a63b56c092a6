// Package eventlog is a peejay.Backend that records every callback it
// receives, for use in parser tests and the peejay CLI's "events" command.
package eventlog

import "fmt"

// Kind identifies which callback produced an Event.
type Kind int

const (
	BeginArray Kind = iota
	EndArray
	BeginObject
	Key
	EndObject
	StringValue
	IntegerValue
	DoubleValue
	BooleanValue
	NullValue
)

func (k Kind) String() string {
	switch k {
	case BeginArray:
		return "begin_array"
	case EndArray:
		return "end_array"
	case BeginObject:
		return "begin_object"
	case Key:
		return "key"
	case EndObject:
		return "end_object"
	case StringValue:
		return "string_value"
	case IntegerValue:
		return "integer_value"
	case DoubleValue:
		return "double_value"
	case BooleanValue:
		return "boolean_value"
	case NullValue:
		return "null_value"
	default:
		return "unknown"
	}
}

// Event is one recorded callback. Only the field matching Kind is
// meaningful; the rest are zero.
type Event struct {
	Kind   Kind
	Str    string
	Int    int64
	Double float64
	Bool   bool
}

func (e Event) String() string {
	switch e.Kind {
	case Key, StringValue:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Str)
	case IntegerValue:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Int)
	case DoubleValue:
		return fmt.Sprintf("%s(%g)", e.Kind, e.Double)
	case BooleanValue:
		return fmt.Sprintf("%s(%t)", e.Kind, e.Bool)
	default:
		return e.Kind.String()
	}
}

// Backend implements peejay.Backend[[]Event]: every call is appended to
// Events in order, with no interpretation or validation. It copies
// borrowed key/string byte slices since the parser only guarantees their
// lifetime for the duration of the callback.
type Backend struct {
	Events []Event
}

// New returns a Backend with no recorded events.
func New() *Backend { return &Backend{} }

func (b *Backend) BeginArray() error { b.Events = append(b.Events, Event{Kind: BeginArray}); return nil }
func (b *Backend) EndArray() error   { b.Events = append(b.Events, Event{Kind: EndArray}); return nil }
func (b *Backend) BeginObject() error {
	b.Events = append(b.Events, Event{Kind: BeginObject})
	return nil
}
func (b *Backend) EndObject() error { b.Events = append(b.Events, Event{Kind: EndObject}); return nil }

func (b *Backend) Key(key []byte) error {
	b.Events = append(b.Events, Event{Kind: Key, Str: string(key)})
	return nil
}

func (b *Backend) StringValue(s []byte) error {
	b.Events = append(b.Events, Event{Kind: StringValue, Str: string(s)})
	return nil
}

func (b *Backend) IntegerValue(v int64) error {
	b.Events = append(b.Events, Event{Kind: IntegerValue, Int: v})
	return nil
}

func (b *Backend) DoubleValue(v float64) error {
	b.Events = append(b.Events, Event{Kind: DoubleValue, Double: v})
	return nil
}

func (b *Backend) BooleanValue(v bool) error {
	b.Events = append(b.Events, Event{Kind: BooleanValue, Bool: v})
	return nil
}

func (b *Backend) NullValue() error {
	b.Events = append(b.Events, Event{Kind: NullValue})
	return nil
}

// Result returns the recorded events. It never fails.
func (b *Backend) Result() ([]Event, error) { return b.Events, nil }
