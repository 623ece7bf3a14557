package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/gosimple/slug"
)

// OutputName builds file name for the result of applying script to source
// deck. Both arguments are paths, only base names without extensions are
// used.
func (conf *DocumentConfig) OutputName(source, script string) (string, error) {
	tmpl, err := template.New(string(OutputNameTemplateFieldName)).Parse(conf.OutputNameTemplate)
	if err != nil {
		return "", fmt.Errorf("unable to parse output name template: %w", err)
	}
	var b strings.Builder
	values := struct{ Source, Script string }{stem(source), stem(script)}
	if err := tmpl.Execute(&b, values); err != nil {
		return "", fmt.Errorf("unable to expand output name template: %w", err)
	}
	name := slug.Make(b.String())
	if name == "" {
		name = CleanFileName(b.String())
	}
	return name + ".xml", nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
