// Package request decodes and validates inbound HTTP input before anything
// is dispatched.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = v.RegisterValidation("jsonobject", isJSONObject)
	return v
}

// isJSONObject accepts an absent document or a JSON object.
func isJSONObject(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Slice {
		return false
	}
	raw := bytes.TrimSpace(f.Bytes())
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return true
	}
	return raw[0] == '{' && json.Valid(raw)
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// DecodeJSON reads a single JSON object into dst.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validation("request body is required")
		}
		return apperr.Validation("invalid JSON body")
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}

// Validate checks the `validate` tags of v. Any missing required field
// fails with a message naming every required field of v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation("invalid request")
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
		case "jsonobject":
			return apperr.Validation("%s must be a JSON object", fe.Field())
		default:
			return apperr.Validation("%s is invalid", fe.Field())
		}
	}
	return apperr.Validation("%s", requiredMessage(requiredFields(v)))
}

// Decode is DecodeJSON followed by Validate.
func Decode(r *http.Request, dst any) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}
	return Validate(dst)
}

func requiredFields(v any) []string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var fields []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
			if rule == "required" {
				fields = append(fields, jsonName(f))
				break
			}
		}
	}
	return fields
}

func requiredMessage(fields []string) string {
	switch len(fields) {
	case 0:
		return "required fields are missing"
	case 1:
		return fields[0] + " is required"
	case 2:
		return fields[0] + " and " + fields[1] + " are required"
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1] + " are required"
	}
}

// PageParams reads page, size and sort from the query string.
func PageParams(r *http.Request, defaultSort string) (query.Params, error) {
	q := r.URL.Query()
	p := query.Params{Page: query.DefaultPage, Size: query.DefaultSize, Sort: defaultSort}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return p, apperr.Validation("page must be a non-negative integer")
		}
		p.Page = n
	}
	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > query.MaxSize {
			return p, apperr.Validation("size must be an integer between 1 and %d", query.MaxSize)
		}
		p.Size = n
	}
	if p.Page > math.MaxInt/p.Size {
		return p, apperr.Validation("page is too large for size %d", p.Size)
	}
	if raw := q.Get("sort"); raw != "" {
		p.Sort = raw
	}
	return p, nil
}

// Bool reads an optional boolean query parameter.
func Bool(r *http.Request, key string, fallback bool) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, apperr.Validation("%s must be a boolean", key)
	}
	return b, nil
}
