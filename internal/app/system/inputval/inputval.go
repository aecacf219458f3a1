// Package inputval validates request payloads declared with struct tags:
//
//	type teamInput struct {
//		Name *string `json:"name" validate:"required,max=100"`
//	}
//
// Supported rules: required, min=N, max=N, email, objectid, dive.
// Errors are keyed by the json name of the field. An optional label tag
// switches messages to the "<Label> is required." form.
package inputval

import (
	"fmt"
	"net/mail"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the errors of one Validate call.
type Result struct {
	Errors []FieldError
}

func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "".
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; ".
func (r Result) All() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Fields groups messages by field name.
func (r Result) Fields() map[string][]string {
	out := make(map[string][]string, len(r.Errors))
	for _, e := range r.Errors {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// Validate checks every tagged field of the struct v (or *v).
func Validate(v any) Result {
	var r Result
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return r
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return r
	}
	validateStruct(rv, "", &r)
	return r
}

func validateStruct(rv reflect.Value, prefix string, r *Result) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag := sf.Tag.Get("validate")
		if tag == "" || !sf.IsExported() {
			continue
		}
		name := prefix + fieldName(sf)
		if msg, dive := checkField(rv.Field(i), strings.Split(tag, ","), sf.Tag.Get("label")); msg != "" {
			r.Errors = append(r.Errors, FieldError{Field: name, Message: msg})
		} else if dive {
			diveInto(rv.Field(i), name, r)
		}
	}
}

func diveInto(fv reflect.Value, name string, r *Result) {
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return
		}
		fv = fv.Elem()
	}
	if fv.Kind() != reflect.Slice && fv.Kind() != reflect.Array {
		return
	}
	for j := 0; j < fv.Len(); j++ {
		elem := fv.Index(j)
		for elem.Kind() == reflect.Pointer && !elem.IsNil() {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Struct {
			validateStruct(elem, fmt.Sprintf("%s[%d].", name, j), r)
		}
	}
}

func fieldName(sf reflect.StructField) string {
	if js := sf.Tag.Get("json"); js != "" {
		if n, _, _ := strings.Cut(js, ","); n != "" && n != "-" {
			return n
		}
	}
	return sf.Name
}

// checkField applies rules in order and returns the first failure message.
// dive reports whether the caller should descend into slice elements.
func checkField(fv reflect.Value, rules []string, label string) (msg string, dive bool) {
	m := messages{label: label}

	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			if hasRule(rules, "required") {
				return m.required(), false
			}
			return "", false
		}
		fv = fv.Elem()
	}

	for _, rule := range rules {
		key, arg, _ := strings.Cut(strings.TrimSpace(rule), "=")
		switch key {
		case "required":
			if isBlank(fv) {
				return m.required(), false
			}
		case "min", "max":
			n, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				continue
			}
			if s := bound(fv, key, n, m); s != "" {
				return s, false
			}
		case "email":
			if fv.Kind() == reflect.String && fv.String() != "" && !IsValidEmail(fv.String()) {
				return m.email(), false
			}
		case "objectid":
			if fv.Kind() == reflect.String && fv.String() != "" && !IsValidObjectID(fv.String()) {
				return m.objectID(), false
			}
		case "dive":
			dive = true
		}
	}
	return "", dive
}

func hasRule(rules []string, want string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == want {
			return true
		}
	}
	return false
}

func isBlank(fv reflect.Value) bool {
	switch fv.Kind() {
	case reflect.String:
		return strings.TrimSpace(fv.String()) == ""
	case reflect.Slice, reflect.Map:
		return fv.IsNil()
	case reflect.Struct:
		return fv.IsZero()
	}
	return false
}

func bound(fv reflect.Value, key string, n float64, m messages) string {
	var (
		got    float64
		isText bool
	)
	switch fv.Kind() {
	case reflect.String:
		got, isText = float64(utf8.RuneCountInString(fv.String())), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		got = float64(fv.Int())
	case reflect.Float32, reflect.Float64:
		got = fv.Float()
	default:
		return ""
	}
	if key == "max" && got > n {
		return m.max(n, isText)
	}
	if key == "min" && got < n {
		return m.min(n, isText)
	}
	return ""
}

type messages struct{ label string }

func num(n float64) string { return strconv.FormatFloat(n, 'f', -1, 64) }

func (m messages) required() string {
	if m.label != "" {
		return m.label + " is required."
	}
	return "This field is required."
}

func (m messages) max(n float64, text bool) string {
	switch {
	case m.label != "" && text:
		return fmt.Sprintf("%s must be at most %s characters.", m.label, num(n))
	case m.label != "":
		return fmt.Sprintf("%s must be at most %s.", m.label, num(n))
	case text:
		return fmt.Sprintf("Ensure this field has no more than %s characters.", num(n))
	}
	return fmt.Sprintf("Ensure this value is less than or equal to %s.", num(n))
}

func (m messages) min(n float64, text bool) string {
	switch {
	case m.label != "" && text:
		return fmt.Sprintf("%s must be at least %s characters.", m.label, num(n))
	case m.label != "":
		return fmt.Sprintf("%s must be at least %s.", m.label, num(n))
	case text:
		return fmt.Sprintf("Ensure this field has at least %s characters.", num(n))
	}
	return fmt.Sprintf("Ensure this value is greater than or equal to %s.", num(n))
}

func (m messages) email() string {
	if m.label != "" {
		return "A valid email address is required."
	}
	return "Enter a valid email address."
}

func (m messages) objectID() string {
	if m.label != "" {
		return m.label + " must be a valid ID."
	}
	return "Enter a valid ID."
}

// IsValidEmail accepts a bare addr-spec ("user@example.com"). Display names,
// whitespace, and leading, trailing or doubled dots are rejected.
// Single-label domains ("user@localhost") are allowed.
func IsValidEmail(s string) bool {
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 || strings.ContainsAny(s, "<>") {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	for _, part := range []string{s[:at], s[at+1:]} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") || strings.Contains(part, "..") {
			return false
		}
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Name == "" && addr.Address == s
}

// IsValidObjectID reports whether s (trimmed) is a 24-char hex ObjectID.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return err == nil
}
