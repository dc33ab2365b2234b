// Package validation parses inbound JSON payloads into typed records.
//
// A payload is decoded one key at a time so that a type mismatch on one field
// does not hide problems on the others, then checked against the struct's
// `validate` tags. Every violation is reported in a single
// apperr.ValidationError; nothing is accepted partially. Keys that the target
// struct does not declare (including "id" and "userId") are dropped.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"agriai/entities"
	"agriai/pkg/apperr"
)

var validate = newValidator()

var decimalRX = regexp.MustCompile(`^\d+(\.\d+)?$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	mustRegister(v, "hectares", func(fl validator.FieldLevel) bool {
		return decimalRX.MatchString(fl.Field().String())
	})
	mustRegister(v, "crop_type", func(fl validator.FieldLevel) bool {
		return entities.CropType(fl.Field().String()).IsValid()
	})
	mustRegister(v, "livestock_type", func(fl validator.FieldLevel) bool {
		return entities.LivestockType(fl.Field().String()).IsValid()
	})
	mustRegister(v, "chat_role", func(fl validator.FieldLevel) bool {
		r := fl.Field().String()
		return r == "user" || r == "assistant"
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

func jsonName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

// decode fills the pointer fields of dst from the JSON object in raw and
// validates the result. dst must be a pointer to a struct whose fields are
// all pointers.
func decode(raw []byte, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil || obj == nil {
		return &apperr.ValidationError{Errors: []apperr.FieldError{{Field: "body", Message: "must be a JSON object"}}}
	}

	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()
	problems := map[string]string{}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		key := jsonName(sf)
		val, ok := obj[key]
		if !ok {
			continue
		}
		elem := sf.Type.Elem()
		if bytes.Equal(bytes.TrimSpace(val), []byte("null")) {
			problems[key] = "expected " + kindName(elem) + ", received null"
			continue
		}
		ptr := reflect.New(elem)
		if err := json.Unmarshal(val, ptr.Interface()); err != nil {
			problems[key] = "expected " + kindName(elem)
			continue
		}
		rv.Field(i).Set(ptr)
	}

	var checked []apperr.FieldError
	if err := Struct(dst); err != nil {
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		checked = ve.Errors
	}

	// Decoding problems win over tag failures on the same key. Nested
	// failures (items[0].role) are grouped under their top-level key.
	ve := &apperr.ValidationError{}
	for i := 0; i < rt.NumField(); i++ {
		key := jsonName(rt.Field(i))
		if msg, ok := problems[key]; ok {
			ve.Add(key, msg)
			continue
		}
		for _, fe := range checked {
			if fe.Field == key || strings.HasPrefix(fe.Field, key+"[") || strings.HasPrefix(fe.Field, key+".") {
				if !ve.Has(fe.Field) {
					ve.Add(fe.Field, fe.Message)
				}
			}
		}
	}
	return ve.OrNil()
}

// Struct runs the `validate` tags of v and converts failures into an
// apperr.ValidationError keyed by JSON field name.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &apperr.ValidationError{}
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), rootName(v)+".")
		ve.Add(field, message(fe))
	}
	return ve
}

func rootName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item(s)"
		}
		return "must be " + fe.Param() + " or greater"
	case "latitude":
		return "must be a decimal latitude between -90 and 90"
	case "longitude":
		return "must be a decimal longitude between -180 and 180"
	case "hectares":
		return "must be a non-negative decimal number"
	case "crop_type":
		return "must be one of: " + joinKinds(entities.CropTypes)
	case "livestock_type":
		return "must be one of: " + joinKinds(entities.LivestockTypes)
	case "url":
		return "must be a valid URL"
	case "chat_role":
		return "must be one of: user, assistant"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func joinKinds[T ~string](kinds []T) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

func kindName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice:
		return "array"
	default:
		return t.Kind().String()
	}
}
