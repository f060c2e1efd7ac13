package twic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FromJSON converts raw UTF-8 JSON into a Twic value: null, booleans,
// and strings map directly, arrays become vectors, objects become
// maps preserving source order.  JSON numbers keep the integer/float
// distinction by inspecting the raw token: no '.', 'e', or 'E' means
// integer, anything else (or an integer beyond int64) means float.
//
// Duplicate object keys resolve the way Twic's own decoder resolves
// them: the last value wins, the key keeps its first position.
func FromJSON(raw []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	v, err := fromJSONValue(dec)
	if err != nil {
		return nil, err
	}
	// Exactly one root value; json.Decoder happily reads a stream.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("twic: trailing content after JSON value")
	}
	return v, nil
}

func fromJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("twic: unexpected end of JSON input")
		}
		return nil, fmt.Errorf("twic: %w", err)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return fromJSONObject(dec)
		case '[':
			return fromJSONArray(dec)
		default:
			return nil, fmt.Errorf("twic: unexpected JSON delimiter %q", v.String())
		}
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case json.Number:
		return fromJSONNumber(v), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("twic: unexpected JSON token %T", tok)
	}
}

func fromJSONObject(dec *json.Decoder) (Value, error) {
	m := EmptyMap()
	for dec.More() {
		kTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("twic: %w", err)
		}
		key, ok := kTok.(string)
		if !ok {
			return nil, fmt.Errorf("twic: JSON object key is not a string")
		}
		val, err := fromJSONValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, val)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, fmt.Errorf("twic: %w", err)
	}
	return m, nil
}

func fromJSONArray(dec *json.Decoder) (Value, error) {
	vec := Vector{}
	for dec.More() {
		val, err := fromJSONValue(dec)
		if err != nil {
			return nil, err
		}
		vec = append(vec, val)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, fmt.Errorf("twic: %w", err)
	}
	return vec, nil
}

// fromJSONNumber inspects the raw token string: json.Number preserves
// the source spelling, which is what distinguishes 1 from 1.0.
func fromJSONNumber(n json.Number) Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntegerNumber(i)
		}
		// Beyond int64; fall through to the float reading.
	}
	f, _ := strconv.ParseFloat(s, 64)
	return FloatNumber(f)
}

// ToJSON renders a Twic value as JSON.  It fails for the values JSON
// cannot represent: NaN and infinite numbers, and strings (or map
// keys) whose payload is not valid UTF-8.
func ToJSON(v Value) ([]byte, error) {
	var b bytes.Buffer
	if err := toJSONValue(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func toJSONValue(b *bytes.Buffer, v Value) error {
	switch val := v.(type) {
	case Null, nil:
		b.WriteString("null")
	case Bool:
		if val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		if !val.IsFinite() {
			return fmt.Errorf("twic: %s has no JSON representation", val)
		}
		if val.IsInteger() {
			b.WriteString(strconv.FormatInt(val.i, 10))
		} else {
			b.WriteString(strconv.FormatFloat(val.f, 'g', -1, 64))
		}
	case String:
		return toJSONString(b, string(val))
	case Vector:
		b.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := toJSONValue(b, elem); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case *Map:
		b.WriteByte('{')
		for i := range val.Keys {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := toJSONString(b, val.Keys[i]); err != nil {
				return err
			}
			b.WriteByte(':')
			if err := toJSONValue(b, val.Values[i]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	}
	return nil
}

func toJSONString(b *bytes.Buffer, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("twic: string %q is not valid UTF-8", s)
	}
	enc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(enc)
	return nil
}
