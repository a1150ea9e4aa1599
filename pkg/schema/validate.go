package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

// Validate checks raw against d and returns the coerced copy. It never panics
// on malformed input; every failure becomes a rejected Result.
func Validate(raw any, d *Descriptor) Result {
	if d == nil {
		return rejected("no descriptor")
	}

	if d.Many {
		items, err := toObjectList(raw)
		if err != nil {
			return rejected(fmt.Sprintf("%s: %v", d.Name, err))
		}

		out := make([]map[string]any, 0, len(items))
		for i, item := range items {
			validated, err := d.validateObject(item)
			if err != nil {
				return rejected(fmt.Sprintf("%s[%d]: %v", d.Name, i, err))
			}
			out = append(out, validated)
		}

		return accepted(out)
	}

	object, err := toObject(raw)
	if err != nil {
		return rejected(fmt.Sprintf("%s: %v", d.Name, err))
	}

	validated, err := d.validateObject(object)
	if err != nil {
		return rejected(fmt.Sprintf("%s: %v", d.Name, err))
	}

	return accepted(validated)
}

func (d *Descriptor) validateObject(in map[string]any) (map[string]any, error) {
	if len(d.Inject) > 0 {
		merged := make(map[string]any, len(in)+len(d.Inject))
		for k, v := range in {
			merged[k] = v
		}
		for k, v := range d.Inject {
			merged[k] = v
		}
		in = merged
	}

	out := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		value, present := in[f.Name]
		if !present || value == nil {
			if f.Required {
				return nil, fmt.Errorf("field %q: missing required field", f.Name)
			}
			continue
		}

		coerced, err := f.coerce(value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		if f.Flatten {
			nested, ok := coerced.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("field %q: only objects can be flattened", f.Name)
			}
			for k, v := range nested {
				out[k] = v
			}
			continue
		}

		if f.Encode {
			encoded, err := utils.MarshalToString(coerced)
			if err != nil {
				return nil, fmt.Errorf("field %q: encoding: %w", f.Name, err)
			}
			coerced = encoded
		}

		out[f.Name] = coerced
	}

	return out, nil
}

func (f Field) coerce(value any) (any, error) {
	switch f.Type {
	case String:
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, err
		}
		if len(f.OneOf) > 0 && !slices.Contains(f.OneOf, s) {
			return nil, fmt.Errorf("value %q is not one of %v", s, f.OneOf)
		}
		return s, nil

	case Int:
		return toInt64(value)

	case Float:
		return cast.ToFloat64E(value)

	case Bool:
		return cast.ToBoolE(value)

	case StringList:
		return toStringList(value)

	case List:
		return toList(value)

	case Map:
		return cast.ToStringMapE(value)

	case Object:
		if f.Nested == nil {
			return nil, fmt.Errorf("object field without nested descriptor")
		}
		object, err := toObject(value)
		if err != nil {
			return nil, err
		}
		return f.Nested.validateObject(object)

	case ObjectList:
		if f.Nested == nil {
			return nil, fmt.Errorf("object list field without nested descriptor")
		}
		items, err := toObjectList(value)
		if err != nil {
			return nil, err
		}
		out := make([]map[string]any, 0, len(items))
		for i, item := range items {
			validated, err := f.Nested.validateObject(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, validated)
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported field type %s", f.Type)
}

func toObject(value any) (map[string]any, error) {
	if _, isString := value.(string); isString {
		return nil, fmt.Errorf("expected object, got string")
	}

	object, err := cast.ToStringMapE(value)
	if err != nil {
		return nil, fmt.Errorf("expected object: %w", err)
	}

	return object, nil
}

func toObjectList(value any) ([]map[string]any, error) {
	if objects, ok := value.([]map[string]any); ok {
		return objects, nil
	}

	items, err := toList(value)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		object, err := toObject(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, object)
	}

	return out, nil
}

func toList(value any) ([]any, error) {
	switch v := value.(type) {
	case []any:
		return slices.Clone(v), nil
	case []string:
		out := make([]any, 0, len(v))
		for _, s := range v {
			out = append(out, s)
		}
		return out, nil
	case []map[string]any:
		out := make([]any, 0, len(v))
		for _, m := range v {
			out = append(out, m)
		}
		return out, nil
	case string:
		return nil, fmt.Errorf("expected list, got string")
	}

	return cast.ToSliceE(value)
}

func toStringList(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		return nil, fmt.Errorf("expected list, got string")
	}

	return cast.ToStringSliceE(value)
}

// toInt64 accepts integers, integral floats and base 10 strings. Fractions
// are rejected instead of truncated.
func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case json.Number:
		return parseInt64(v.String())
	case string:
		return parseInt64(v)
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	}

	return cast.ToInt64E(value)
}

func parseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return n, nil
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return int64(f), nil
}
