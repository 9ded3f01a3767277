// Package httputil provides the HTTP method and response code vocabulary of
// OpenAPI path items.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// Lower-case method keys of an OpenAPI path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
	MethodQuery   = "query" // OAS 3.2 only
)

// OperationMethods lists every method key in document traversal order.
var OperationMethods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace, MethodQuery,
}

// IsOperationMethod reports whether key names an operation of a path item.
func IsOperationMethod(key string) bool {
	for _, m := range OperationMethods {
		if m == key {
			return true
		}
	}
	return false
}

// ValidateStatusCode reports whether code is an acceptable key of a
// responses object: "default", a 1XX-5XX range or a number in 100-599.
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if code[1] == 'X' && code[2] == 'X' {
		return code[0] >= '1' && code[0] <= '5'
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= 100 && n <= 599
}

// IsValidMediaType validates a content map key. Wildcards (*/* and type/*)
// are accepted; */subtype is not.
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}
	if strings.HasPrefix(mediaType, "*/") {
		return false
	}
	if prefix, ok := strings.CutSuffix(mediaType, "/*"); ok {
		return prefix != "" && prefix != "*" && !strings.Contains(prefix, "/")
	}
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
