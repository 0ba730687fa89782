package export

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formdesigner/pkg/element"
)

// OpenAPIOptions tune the generated document.
type OpenAPIOptions struct {
	// ServerURL is listed in the document servers when set.
	ServerURL string
	// Version is the info.version value; defaults to "1.0.0".
	Version string
}

// Form is the part of a form record the OpenAPI export needs.
type Form struct {
	ID          string
	Name        string
	Description string
	Elements    []element.Instance
}

// OpenAPI builds an OpenAPI 3 document describing the submission endpoint of
// form. The document is validated before it is returned.
func OpenAPI(ctx context.Context, form Form, opts OpenAPIOptions) (*openapi3.T, error) {
	version := opts.Version
	if version == "" {
		version = "1.0.0"
	}
	title := strings.TrimSpace(form.Name)
	if title == "" {
		title = form.ID
	}

	payloadName := "Submission"
	payload := submissionSchema(form.Elements)
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Description: form.Description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				payloadName: openapi3.NewSchemaRef("", payload),
			},
		},
	}
	if opts.ServerURL != "" {
		doc.Servers = openapi3.Servers{{URL: opts.ServerURL}}
	}

	content := openapi3.NewStringSchema()
	content.Description = "The payload encoded as a JSON string, used when values is absent."
	body := openapi3.NewObjectSchema()
	body.Properties = openapi3.Schemas{
		"values":  openapi3.NewSchemaRef("#/components/schemas/"+payloadName, payload),
		"content": openapi3.NewSchemaRef("", content),
	}

	op := openapi3.NewOperation()
	op.OperationID = "submit_" + operationSuffix(form.ID)
	op.Summary = "Submit " + title
	op.Parameters = openapi3.Parameters{
		{Value: openapi3.NewPathParameter("formID").WithSchema(openapi3.NewStringSchema())},
	}
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body),
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusCreated, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Submission recorded")}),
		openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Payload failed validation")}),
		openapi3.WithStatus(http.StatusConflict, &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Form is not published")}),
	)
	doc.Paths.Set("/api/forms/{formID}/submissions", &openapi3.PathItem{Post: op})

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("export: validate openapi: %w", err)
	}
	return doc, nil
}

func submissionSchema(elements []element.Instance) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Properties = openapi3.Schemas{}

	for _, inst := range elements {
		if !inst.Type.IsInput() {
			continue
		}
		prop := openapi3.NewStringSchema()
		prop.Title = element.Label(inst.Attributes)
		isRequired, _ := element.Required(inst.Attributes)

		switch a := inst.Attributes.(type) {
		case element.NumberAttributes:
			prop.Pattern = numberPattern
		case element.DateAttributes:
			prop.Format = "date"
		case element.SelectAttributes:
			prop.Enum = selectEnum(a.Options, isRequired)
		case element.CheckboxAttributes:
			if isRequired {
				prop.Enum = []any{"true"}
			} else {
				prop.Enum = []any{"true", "false"}
			}
		}
		if isRequired {
			schema.Required = append(schema.Required, inst.ID)
			if prop.Enum == nil {
				prop.MinLength = 1
				if prop.Pattern == "" {
					prop.Pattern = nonBlankPattern
				}
			}
		}
		schema.Properties[inst.ID] = openapi3.NewSchemaRef("", prop)
	}
	return schema
}

func operationSuffix(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, id)
}
