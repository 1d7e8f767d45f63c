package captable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// jsonObjectWriter writes a JSON object whose members keep the order they
// were appended in. The zero value is an empty object.
//
// The first error sticks: later calls are no-ops and MarshalJSON returns it.
type jsonObjectWriter struct {
	buf bytes.Buffer
	err error
}

// member writes `"key":raw,`.
func (w *jsonObjectWriter) member(key string, raw []byte) {
	w.buf.WriteString(strconv.Quote(key))
	w.buf.WriteByte(':')
	w.buf.Write(raw)
	w.buf.WriteByte(',')
}

// Append marshals value under key.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return w
	}
	w.member(key, raw)
	return w
}

// Optional appends value unless it is the zero value of its type, so that
// false flags and empty codes stay out of the output.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Embed merges the members of the JSON object raw into w.
func (w *jsonObjectWriter) Embed(raw []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		w.err = fmt.Errorf("cannot embed %q: not a JSON object", raw)
		return w
	}
	if members := bytes.TrimSpace(raw[1 : len(raw)-1]); len(members) > 0 {
		w.buf.Write(members)
		w.buf.WriteByte(',')
	}
	return w
}

// EmbedFrom marshals v, which must encode as an object, and merges its members.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("cannot embed: %w", err)
		return w
	}
	return w.Embed(raw)
}

// AppendObject writes a nested object with one member per stakeholder, in
// the order of ids. A Go map would be marshaled in alphabetical order,
// "investor-10" before "investor-2".
func (w *jsonObjectWriter) AppendObject(key string, ids []StakeholderID, value func(StakeholderID) any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	var nested jsonObjectWriter
	for _, id := range ids {
		nested.Append(id.String(), value(id))
	}
	raw, err := nested.MarshalJSON()
	if err != nil {
		w.err = err
		return w
	}
	w.member(key, raw)
	return w
}

// MarshalJSON returns the object, or the first error met while writing it.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	members := bytes.TrimSuffix(w.buf.Bytes(), []byte{','})
	res := make([]byte, 0, len(members)+2)
	res = append(res, '{')
	res = append(res, members...)
	return append(res, '}'), nil
}
