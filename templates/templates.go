package templates

// NOTICE: Based on Docker's docker/utils/templates/templates.go here
// as of da0ccf8e61e4d5d4005e19fcf0115372f09840bf
// For reference, see:
// https://github.com/docker/docker/blob/master/utils/templates/templates.go
// https://github.com/docker/docker/blob/master/LICENSE

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/hashicorp/errwrap"
	"github.com/henvic/readmegen/prettyjson"
)

var basicFunctions = template.FuncMap{
	"json": func(v interface{}) string {
		a, _ := json.Marshal(v)
		return string(a)
	},
	"split": strings.Split,
	"join":  strings.Join,
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"pad":   padWithSpace,
}

type compiledTemplate struct {
	template *template.Template
	err      error
}

var cachedTmpl = map[string]compiledTemplate{}

// ExecuteOrList executes the Execute function if format is not empty,
// otherwise, it returns all as a pretty JSON
func ExecuteOrList(format string, data interface{}) (string, error) {
	if format != "" {
		return Execute(format, data)
	}

	bin, err := json.Marshal(&data)

	if err != nil {
		return "", err
	}

	return string(prettyjson.Pretty(bin)), nil
}

// Execute template with format and data values
func Execute(format string, data interface{}) (string, error) {
	if _, ok := cachedTmpl[format]; !ok {
		tmpl, tmplErr := parse(format)
		cachedTmpl[format] = compiledTemplate{tmpl, tmplErr}
	}

	var cached = cachedTmpl[format]

	if cached.err != nil {
		return "", errwrap.Wrapf("template parsing error: {{err}}", cached.err)
	}

	var buf bytes.Buffer

	if err := cached.template.Execute(&buf, data); err != nil {
		return "", errwrap.Wrapf("can not execute template: {{err}}", err)
	}

	return buf.String(), nil
}

// parse creates a new annonymous template with the basic functions
// and parses the given format.
func parse(format string) (*template.Template, error) {
	return newParse("", format)
}

// newParse creates a new tagged template with the basic functions
// and parses the given format.
func newParse(tag, format string) (*template.Template, error) {
	return template.New(tag).Funcs(basicFunctions).Parse(format)
}

// padWithSpace adds whitespace to the input if the input is non-empty
func padWithSpace(source string, prefix, suffix int) string {
	if source == "" {
		return source
	}
	return strings.Repeat(" ", prefix) + source + strings.Repeat(" ", suffix)
}
