package jsonbody

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

type key string

const bodyKey key = "JSONBody"

// ErrNotObject is returned when a request body is not a single JSON object.
var ErrNotObject = errors.New("request body is not a JSON object")

// Property is one top-level member of a JSON object.
type Property struct {
	Name  string
	Value json.RawMessage
}

// Body is a decoded JSON object that remembers the order its keys were
// written in.
type Body struct {
	Properties []Property
}

// Decode reads a single JSON object. An empty payload decodes to an empty
// body.
func Decode(data []byte) (*Body, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Body{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(ErrNotObject, err.Error())
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	b := &Body{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(ErrNotObject, err.Error())
		}
		name, ok := tok.(string)
		if !ok {
			return nil, ErrNotObject
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrap(ErrNotObject, err.Error())
		}
		b.Properties = append(b.Properties, Property{Name: name, Value: raw})
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(ErrNotObject, err.Error())
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrNotObject
	}

	return b, nil
}

// Lookup returns the value of name. When a key repeats, the last value wins.
func (b *Body) Lookup(name string) (json.RawMessage, bool) {
	var (
		v     json.RawMessage
		found bool
	)
	for _, p := range b.Properties {
		if p.Name == name {
			v, found = p.Value, true
		}
	}
	return v, found
}

// String returns the string value of name. present is false when the key is
// absent; ok is false when the key holds anything but a JSON string.
func (b *Body) String(name string) (value string, present bool, ok bool) {
	raw, present := b.Lookup(name)
	if !present {
		return "", false, false
	}
	if err := json.Unmarshal(raw, &value); err != nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", true, false
	}
	return value, true, true
}

// Int64 returns the integer value of name. Integral JSON numbers and
// strings holding one are accepted.
func (b *Body) Int64(name string) (int64, bool) {
	raw, present := b.Lookup(name)
	if !present {
		return 0, false
	}
	s := string(bytes.TrimSpace(raw))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetBodyToContext stores the decoded body on ctx.
func SetBodyToContext(ctx context.Context, b *Body) context.Context {
	return context.WithValue(ctx, bodyKey, b)
}

// GetBodyFromContext returns the body stored by SetBodyToContext.
func GetBodyFromContext(ctx context.Context) (*Body, bool) {
	b, ok := ctx.Value(bodyKey).(*Body)
	return b, ok && b != nil
}
