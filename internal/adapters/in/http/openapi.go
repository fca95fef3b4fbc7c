package http

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

var (
	registerOnce sync.Once
	registerErr  error
)

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string { return string(d) }

// registerOpenAPI hands the document to swag so echo-swagger can serve it at
// /swagger/doc.json. swag panics on a second registration, hence the once.
func registerOpenAPI(ctx context.Context) error {
	registerOnce.Do(func() {
		doc, err := LoadOpenAPI(ctx)
		if err != nil {
			registerErr = err
			return
		}
		raw, err := doc.MarshalJSON()
		if err != nil {
			registerErr = fmt.Errorf("encode openapi document: %w", err)
			return
		}
		swag.Register(swag.Name, swaggerDoc(raw))
	})
	return registerErr
}
