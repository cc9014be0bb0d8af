package req

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"event_finder/pkg/errcodes"
)

const maxBodyBytes = 1 << 20

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func init() { //nolint:gochecknoinits
	// Report JSON names so the caller recognizes the fields.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Read decodes a JSON body of at most 1 MiB into dest and validates it.
// Unknown fields are rejected. Every failure is an invalid argument error
// with code ValidationError and a description fit for the caller.
func Read(r *http.Request, dest any) error {
	// jsoniter flattens reader errors into text, so the size limit is
	// enforced before decoding.
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		return invalid(fmt.Errorf("io.ReadAll: %w", err), decodeDescription(err))
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return invalid(fmt.Errorf("json.Decode: %w", err), decodeDescription(err))
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return invalid(err, describe(err))
	}

	return nil
}

func invalid(err error, description string) error {
	return failure.NewInvalidArgumentError(
		err.Error(),
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription(description),
	)
}

func decodeDescription(err error) string {
	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return "Empty request body"
	case errors.As(err, &tooLarge):
		return "Request body is too large"
	default:
		return "Invalid JSON"
	}
}

// describe turns validator errors into "prices[0]: required; x: required".
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}

		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}

		parts = append(parts, field+": "+rule)
	}

	return strings.Join(parts, "; ")
}
