package config

import (
	"embed"
	"sync"
)

//go:embed defaults.yaml
var defaultsFS embed.FS

const defaultsFile = "defaults.yaml"

var (
	defaultOnce sync.Once
	defaultDoc  *Document
	defaultErr  error
)

// Default returns the embedded default style document. The document is parsed
// once; callers receive their own copy of its top-level sections.
func Default() (*Document, error) {
	defaultOnce.Do(func() {
		defaultDoc, defaultErr = ParseFS(defaultsFS, defaultsFile)
	})
	if defaultErr != nil {
		return nil, defaultErr
	}

	doc := *defaultDoc
	doc.Fallbacks = make(map[string]string, len(defaultDoc.Fallbacks))
	for key, value := range defaultDoc.Fallbacks {
		doc.Fallbacks[key] = value
	}
	doc.Links = append(LinkTable(nil), defaultDoc.Links...)
	return &doc, nil
}
