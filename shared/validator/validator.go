package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"

	"hostel/shared/failure"
	"hostel/shared/phone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// enum accepts types exposing IsValid() bool, such as room statuses and user roles.
func registerEnumValidation(fl val.FieldLevel) bool {
	method := fl.Field().MethodByName("IsValid")
	if !method.IsValid() {
		return false
	}

	result := method.Call([]reflect.Value{})

	return len(result) == 1 && result[0].Bool()
}

func registerPhoneValidation(fl val.FieldLevel) bool {
	return phone.Valid(fl.Field().String())
}

func registerDateValidation(fl val.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())

	return err == nil
}

func registerMonthValidation(fl val.FieldLevel) bool {
	_, err := time.Parse("2006-01", fl.Field().String())

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validations := map[string]val.Func{
		"enum":      registerEnumValidation,
		"phone":     registerPhoneValidation,
		"dateonly":  registerDateValidation,
		"monthonly": registerMonthValidation,
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := cutTag(field.Tag.Get("json"))
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})
}

func cutTag(tag string) (string, string, bool) {
	for i := range len(tag) {
		if tag[i] == ',' {
			return tag[:i], tag[i+1:], true
		}
	}

	return tag, "", false
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
