package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// ValidateBody checks JSON bodies against the request schema of the matching
// operation. Routes the document does not describe pass through.
func ValidateBody(doc *openapi3.T, basePath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !methodsWithBody[req.Method] || req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			schema := requestSchema(doc, strings.TrimPrefix(req.URL.Path, basePath), req.Method)
			if schema == nil {
				return next(c)
			}

			raw, err := io.ReadAll(req.Body)
			if err != nil {
				return err
			}
			req.Body = io.NopCloser(bytes.NewReader(raw))

			var value any
			if err = json.Unmarshal(raw, &value); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("body", err)
			}
			if err = schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("body", err)
			}
			return next(c)
		}
	}
}

func requestSchema(doc *openapi3.T, path, method string) *openapi3.Schema {
	item := doc.Paths.Find(path)
	if item == nil {
		return nil
	}
	op := item.GetOperation(strings.ToUpper(method))
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get(echo.MIMEApplicationJSON)
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

// methodsWithBody lists the methods whose bodies are validated.
var methodsWithBody = map[string]bool{
	http.MethodPost: true,
	http.MethodPut:  true,
}
