package jsonrpc

import (
	"github.com/theapemachine/jsonrpc-go/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// Object schemas from the JSON-RPC 2.0 specification, compiled once per
// Validator.
const (
	requestSchema = `{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"description": "A JSON-RPC 2.0 request or notification object",
		"type": "object",
		"required": ["jsonrpc", "method"],
		"properties": {
			"jsonrpc": {"enum": ["2.0"]},
			"method": {"type": "string"},
			"params": {"type": ["array", "object"]},
			"id": {"type": ["integer", "string", "null"]}
		}
	}`

	responseSchema = `{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"description": "A JSON-RPC 2.0 response object",
		"type": "object",
		"required": ["jsonrpc"],
		"properties": {
			"jsonrpc": {"enum": ["2.0"]},
			"id": {"type": ["integer", "string", "null"]},
			"error": {
				"type": "object",
				"required": ["code", "message"],
				"properties": {
					"code": {"type": "integer"},
					"message": {"type": "string"}
				}
			}
		},
		"oneOf": [
			{
				"required": ["result"],
				"not": {"required": ["error"]}
			},
			{
				"required": ["error"],
				"not": {"required": ["result"]}
			}
		]
	}`
)

/*
Validator checks candidate objects against the JSON-RPC 2.0 request and
response schemas. It is a pure checker: the objects pass through
unmodified and nothing is cached between calls.
*/
type Validator struct {
	request  *gojsonschema.Schema
	response *gojsonschema.Schema
}

/*
NewValidator compiles the embedded schemas. Compilation cannot fail for
the documents shipped with the package, so a failure panics rather than
returning an error every caller would have to ignore.
*/
func NewValidator() *Validator {
	return &Validator{
		request:  mustCompile(requestSchema),
		response: mustCompile(responseSchema),
	}
}

/*
ValidateRequest checks a candidate request or notification object.
It returns a *errors.ValidationError describing every violation, or nil
when the object conforms.
*/
func (v *Validator) ValidateRequest(doc any) error {
	return v.validate(v.request, "request", doc)
}

/*
ValidateResponse checks a candidate response object. Rejections include
a missing or wrong "jsonrpc" member, neither or both of "result" and
"error" present, and an "error" object lacking "code" or "message".
*/
func (v *Validator) ValidateResponse(doc any) error {
	return v.validate(v.response, "response", doc)
}

func (v *Validator) validate(schema *gojsonschema.Schema, target string, doc any) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))

	if err != nil {
		return &errors.ValidationError{Target: target, Causes: []string{err.Error()}}
	}

	if result.Valid() {
		return nil
	}

	causes := make([]string, 0, len(result.Errors()))

	for _, desc := range result.Errors() {
		causes = append(causes, desc.String())
	}

	return &errors.ValidationError{Target: target, Causes: causes}
}

func mustCompile(document string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(document))

	if err != nil {
		panic(err)
	}

	return schema
}
