package validation

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"weatherclient.app/pkg/errors"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	// Report wire names so messages match the payload the caller sees
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Struct runs tag based validation on v and returns the raw validator error
func Struct(v interface{}) error {
	return structValidator.Struct(v)
}

// FieldName returns the payload path of the first failing field, without the root type name
func FieldName(err error) string {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return ""
	}
	namespace := validationErrs[0].Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

// DescribeFieldError renders the first validator failure as "<field> failed '<tag>'"
func DescribeFieldError(err error) string {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}
	fe := validationErrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed '%s=%s'", FieldName(err), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed '%s'", FieldName(err), fe.Tag())
}

// ValidatePayload validates a decoded payload and returns a SchemaValidationError naming the field
func ValidatePayload(kind string, v interface{}) error {
	if err := Struct(v); err != nil {
		return errors.NewSchemaValidationError(
			fmt.Sprintf("%s payload: %s", kind, DescribeFieldError(err)), err)
	}
	return nil
}

// DecodePayload unmarshals a JSON body into target.
// Syntax problems become MalformedResponseError, type mismatches become SchemaValidationError.
func DecodePayload(kind string, body []byte, target interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.NewMalformedResponseError(kind+" payload is empty", nil)
	}

	err := json.Unmarshal(body, target)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return errors.NewSchemaValidationError(
			fmt.Sprintf("%s payload: field %s has type %s, expected %s", kind, typeErr.Field, typeErr.Value, typeErr.Type), err)
	}
	return errors.NewMalformedResponseError(fmt.Sprintf("failed to decode %s payload", kind), err)
}

// PayloadShape returns the first significant JSON token of body: '[', '{' or 0 when neither.
func PayloadShape(body []byte) byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return 0
	}
	switch trimmed[0] {
	case '[', '{':
		return trimmed[0]
	}
	return 0
}
