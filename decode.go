package barte

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// dateTimeLayouts are the wire formats the API has been observed to
// use. Order matters: the first layout that parses wins.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateTime is a timestamp field of an API entity. The API is not
// consistent about formats (date-only on charges and orders, full
// RFC 3339 on refund timestamps), so parsing tries a fixed set of
// layouts and fails on anything else.
type DateTime struct {
	time.Time
}

func parseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("unsupported timestamp %q", s)
}

// UnmarshalJSON parses a timestamp string. A raw string is never passed
// through silently: an unrecognized layout is a DecodeError.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Entity: "DateTime", Reason: "is not a string"}
	}
	parsed, err := parseDateTime(s)
	if err != nil {
		return &DecodeError{Entity: "DateTime", Reason: err.Error()}
	}
	*d = parsed
	return nil
}

// MarshalJSON renders the timestamp as RFC 3339.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

type optionalState uint8

const (
	optionalAbsent optionalState = iota
	optionalNull
	optionalSet
)

// Optional is a response field the API sometimes omits, sometimes sends
// as an explicit null and sometimes sends with a value. The three cases
// are kept apart instead of collapsing them into a zero value. The zero
// Optional means the field was absent.
type Optional[T any] struct {
	value T
	state optionalState
}

// OptionalOf returns an Optional holding v.
func OptionalOf[T any](v T) Optional[T] {
	return Optional[T]{value: v, state: optionalSet}
}

// OptionalNull returns an Optional representing an explicit null.
func OptionalNull[T any]() Optional[T] {
	return Optional[T]{state: optionalNull}
}

// Get returns the value and whether one was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == optionalSet
}

// IsNull reports whether the field was an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.state == optionalNull
}

// IsAbsent reports whether the field was missing from the payload.
func (o Optional[T]) IsAbsent() bool {
	return o.state == optionalAbsent
}

// OrElse returns the value, or fallback when no value was set.
func (o Optional[T]) OrElse(fallback T) T {
	if o.state == optionalSet {
		return o.value
	}
	return fallback
}

// MarshalJSON renders the value, or null when absent or explicitly
// null. Entities drop absent fields from their output through wire.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state == optionalSet {
		return json.Marshal(o.value)
	}
	return []byte("null"), nil
}

// wire renders the optional for an entity's wire shape: nil when the
// field was absent, so the entity omits the key entirely, the null
// literal for an explicit null and the encoded value otherwise.
func (o Optional[T]) wire() (json.RawMessage, error) {
	switch o.state {
	case optionalAbsent:
		return nil, nil
	case optionalNull:
		return json.RawMessage("null"), nil
	default:
		return json.Marshal(o.value)
	}
}

// objectDecoder pulls typed fields out of a single JSON object. It
// fails closed: a missing required field, a type mismatch or an
// unparseable timestamp yields a DecodeError naming the entity and
// field. Numbers must arrive as JSON numbers; numeric strings are
// rejected rather than coerced, so precision problems on monetary
// fields surface instead of hiding.
type objectDecoder struct {
	entity string
	fields map[string]json.RawMessage
}

func newObjectDecoder(entity string, data []byte) (*objectDecoder, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &DecodeError{Entity: entity, Reason: "is not a JSON object"}
	}
	return &objectDecoder{entity: entity, fields: fields}, nil
}

func (d *objectDecoder) missing(field string) error {
	return &DecodeError{Entity: d.entity, Field: field, Reason: "is missing"}
}

func (d *objectDecoder) mismatch(field, want string) error {
	return &DecodeError{Entity: d.entity, Field: field, Reason: "is not " + want}
}

// nested keeps a DecodeError raised while decoding an inner entity and
// converts anything else into a field-level mismatch.
func (d *objectDecoder) nested(field, want string, err error) error {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return err
	}
	return d.mismatch(field, want)
}

// rawField returns the raw bytes of a required field.
func (d *objectDecoder) rawField(field string) (json.RawMessage, error) {
	raw, ok := d.fields[field]
	if !ok {
		return nil, d.missing(field)
	}
	return raw, nil
}

func (d *objectDecoder) stringField(field string) (string, error) {
	raw, err := d.rawField(field)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", d.mismatch(field, "a string")
	}
	return s, nil
}

func (d *objectDecoder) floatField(field string) (float64, error) {
	raw, err := d.rawField(field)
	if err != nil {
		return 0, err
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, d.mismatch(field, "a number")
	}
	return f, nil
}

func (d *objectDecoder) intField(field string) (int, error) {
	raw, err := d.rawField(field)
	if err != nil {
		return 0, err
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, d.mismatch(field, "an integer")
	}
	return n, nil
}

func (d *objectDecoder) boolField(field string) (bool, error) {
	raw, err := d.rawField(field)
	if err != nil {
		return false, err
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, d.mismatch(field, "a boolean")
	}
	return b, nil
}

func (d *objectDecoder) dateTimeField(field string) (DateTime, error) {
	s, err := d.stringField(field)
	if err != nil {
		return DateTime{}, err
	}
	parsed, err := parseDateTime(s)
	if err != nil {
		return DateTime{}, &DecodeError{Entity: d.entity, Field: field, Reason: err.Error()}
	}
	return parsed, nil
}

func (d *objectDecoder) optionalString(field string) (Optional[string], error) {
	raw, ok := d.fields[field]
	if !ok {
		return Optional[string]{}, nil
	}
	if isJSONNull(raw) {
		return OptionalNull[string](), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return Optional[string]{}, d.mismatch(field, "a string")
	}
	return OptionalOf(s), nil
}

func (d *objectDecoder) optionalFloat(field string) (Optional[float64], error) {
	raw, ok := d.fields[field]
	if !ok {
		return Optional[float64]{}, nil
	}
	if isJSONNull(raw) {
		return OptionalNull[float64](), nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return Optional[float64]{}, d.mismatch(field, "a number")
	}
	return OptionalOf(f), nil
}

func (d *objectDecoder) optionalInt(field string) (Optional[int], error) {
	raw, ok := d.fields[field]
	if !ok {
		return Optional[int]{}, nil
	}
	if isJSONNull(raw) {
		return OptionalNull[int](), nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return Optional[int]{}, d.mismatch(field, "an integer")
	}
	return OptionalOf(n), nil
}

func (d *objectDecoder) optionalDateTime(field string) (Optional[DateTime], error) {
	raw, ok := d.fields[field]
	if !ok {
		return Optional[DateTime]{}, nil
	}
	if isJSONNull(raw) {
		return OptionalNull[DateTime](), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return Optional[DateTime]{}, d.mismatch(field, "a string")
	}
	parsed, err := parseDateTime(s)
	if err != nil {
		return Optional[DateTime]{}, &DecodeError{Entity: d.entity, Field: field, Reason: err.Error()}
	}
	return OptionalOf(parsed), nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeEntity unmarshals an operation response into v. A failure that
// is not already a DecodeError, such as a 2xx response with an empty
// body or JSON that does not parse at all, is normalized into one
// naming the entity.
func decodeEntity(entity string, data []byte, v any) error {
	if len(data) == 0 {
		return &DecodeError{Entity: entity, Reason: "response body is empty"}
	}
	if err := json.Unmarshal(data, v); err != nil {
		var decErr *DecodeError
		if errors.As(err, &decErr) {
			return err
		}
		return &DecodeError{Entity: entity, Reason: err.Error()}
	}
	return nil
}
