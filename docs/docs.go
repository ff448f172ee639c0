// Package docs publishes the API contract to the swagger UI. Importing it
// registers the document with swag.
package docs

import (
	"encoding/json"
	"sync"

	"logistics/api"

	"github.com/swaggo/swag"
)

type document struct {
	once sync.Once
	doc  string
}

// ReadDoc renders the embedded OpenAPI document as JSON.
func (d *document) ReadDoc() string {
	d.once.Do(func() {
		doc, err := api.Load()
		if err != nil {
			d.doc = "{}"
			return
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			d.doc = "{}"
			return
		}
		d.doc = string(raw)
	})
	return d.doc
}

func init() {
	swag.Register(swag.Name, &document{})
}
