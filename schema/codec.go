package schema

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ConvertError reports a column value that could not be converted into its
// target Go type.
type ConvertError struct {
	Target reflect.Type
	Value  any
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("schema: cannot convert %T(%v) into %s", e.Value, e.Value, e.Target)
}

var (
	uuidType = reflect.TypeOf(uuid.UUID{})
	ulidType = reflect.TypeOf(ulid.ULID{})
	timeType = reflect.TypeOf(time.Time{})
)

// Encode converts a Go value into a driver-friendly bind parameter. Types
// drivers handle natively pass through unchanged.
func Encode(v any) any {
	switch val := v.(type) {
	case uuid.UUID:
		return val.String()
	case ulid.ULID:
		return val.String()
	default:
		return v
	}
}

// Decode assigns a raw column value to dst, converting between the
// encodings drivers commonly return and the field's declared type.
func Decode(dst reflect.Value, raw any) error {
	t := dst.Type()
	if raw == nil {
		dst.Set(reflect.Zero(t))
		return nil
	}

	if t.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(t.Elem()))
		}
		return Decode(dst.Elem(), raw)
	}

	switch t {
	case uuidType:
		id, err := decodeUUID(raw)
		if err != nil {
			return &ConvertError{Target: t, Value: raw}
		}
		dst.Set(reflect.ValueOf(id))
		return nil
	case ulidType:
		id, err := decodeULID(raw)
		if err != nil {
			return &ConvertError{Target: t, Value: raw}
		}
		dst.Set(reflect.ValueOf(id))
		return nil
	case timeType:
		if tv, ok := raw.(time.Time); ok {
			dst.Set(reflect.ValueOf(tv))
			return nil
		}
		return &ConvertError{Target: t, Value: raw}
	}

	rv := reflect.ValueOf(raw)
	switch {
	case rv.Type() == t:
		dst.Set(rv)
	case t.Kind() == reflect.String && rv.Type() == reflect.TypeOf([]byte(nil)):
		dst.SetString(string(raw.([]byte)))
	case isNumeric(rv.Kind()) && isNumeric(t.Kind()):
		dst.Set(rv.Convert(t))
	default:
		return &ConvertError{Target: t, Value: raw}
	}
	return nil
}

// DecodeAs decodes a raw column value into a fresh T.
func DecodeAs[T any](raw any) (T, error) {
	var out T
	if err := Decode(reflect.ValueOf(&out).Elem(), raw); err != nil {
		return out, err
	}
	return out, nil
}

func decodeUUID(raw any) (uuid.UUID, error) {
	switch rv := raw.(type) {
	case uuid.UUID:
		return rv, nil
	case string:
		return uuid.Parse(rv)
	case []byte:
		if len(rv) == 16 {
			return uuid.FromBytes(rv)
		}
		return uuid.Parse(string(rv))
	case [16]byte:
		return uuid.UUID(rv), nil
	default:
		return uuid.UUID{}, fmt.Errorf("unsupported uuid source %T", raw)
	}
}

func decodeULID(raw any) (ulid.ULID, error) {
	switch rv := raw.(type) {
	case ulid.ULID:
		return rv, nil
	case string:
		return ulid.Parse(rv)
	case []byte:
		if len(rv) == 16 {
			var id ulid.ULID
			copy(id[:], rv)
			return id, nil
		}
		return ulid.Parse(string(rv))
	default:
		return ulid.ULID{}, fmt.Errorf("unsupported ulid source %T", raw)
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
