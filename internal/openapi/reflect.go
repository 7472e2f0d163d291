package openapi

import (
	"reflect"
	"strconv"
	"strings"
)

// FromStruct reflects a schema-bearing struct into a Schema object,
// reading the same json/validate/doc/example tags the runtime validator
// and serializer use. This reflection is what keeps the document bound to
// the validation schema.
func FromStruct(v any) *Schema {
	return fromType(reflect.TypeOf(v))
}

func fromType(t reflect.Type) *Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return fromStructType(t)
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: fromType(t.Elem())}
	default:
		return &Schema{}
	}
}

func fromStructType(t reflect.Type) *Schema {
	obj := &Schema{Type: "object", Properties: make(map[string]*Schema, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}

		prop := fromType(field.Type)
		prop.Description = field.Tag.Get("doc")
		if example, ok := field.Tag.Lookup("example"); ok {
			prop.Example = parseExample(prop.Type, example)
		}
		if required := applyValidateTag(prop, field.Tag.Get("validate")); required {
			obj.Required = append(obj.Required, name)
		}
		obj.Properties[name] = prop
	}
	return obj
}

// applyValidateTag translates validator constraints into their JSON Schema
// counterparts and reports whether the field is required.
func applyValidateTag(s *Schema, tag string) bool {
	required := false
	for _, token := range strings.Split(tag, ",") {
		key, param, _ := strings.Cut(token, "=")
		switch key {
		case "required":
			required = true
		case "min":
			if s.Type == "string" {
				if n, err := strconv.Atoi(param); err == nil {
					s.MinLength = &n
				}
			} else if v, err := strconv.ParseFloat(param, 64); err == nil {
				s.Minimum = &v
			}
		case "gte":
			if v, err := strconv.ParseFloat(param, 64); err == nil {
				s.Minimum = &v
			}
		case "lte":
			if v, err := strconv.ParseFloat(param, 64); err == nil {
				s.Maximum = &v
			}
		}
	}
	return required
}

func parseExample(schemaType, raw string) any {
	switch schemaType {
	case "integer":
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	case "number":
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return raw
}
