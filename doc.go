// Package peejay is a streaming, push-style JSON parser. Callers feed an
// arbitrary byte stream in chunks through Input; the parser decodes
// Unicode, recognizes the JSON grammar, and drives a caller-supplied
// Backend with typed events (begin_object, key, integer_value, ...).
//
// The parser builds no AST of its own; a Backend decides what, if
// anything, to materialize. Two Backends ship in internal/ for testing:
// eventlog, which records the callback sequence, and nullbackend, which
// discards everything.
//
// A handful of grammar relaxations beyond strict JSON are available via
// ExtensionSet and the With* Options: comments, trailing commas, a
// single-quote string delimiter, hex/Infinity/NaN numbers, and
// ECMAScript-style object keys and string escapes.
package peejay
