package forms

import (
	"github.com/edea-dev/msweb/pkg/msmodel"
	"github.com/edea-dev/msweb/pkg/schema"
)

// Identified is implemented by entities with a nullable id.
type Identified interface {
	Identity() *int
}

// Form carries validated data plus the field errors and message that are sent back
// to the rendering layer.
type Form[T Identified] struct {
	ID      string             `json:"id"`
	Valid   bool               `json:"valid"`
	Data    T                  `json:"data"`
	Errors  schema.FieldErrors `json:"errors,omitempty"`
	Message any                `json:"message,omitempty"`

	intent Intent
}

func New[T Identified](id string, data T, errs schema.FieldErrors) *Form[T] {
	if errs == nil {
		errs = schema.FieldErrors{}
	}

	return &Form[T]{
		ID:     id,
		Valid:  len(errs) == 0,
		Data:   data,
		Errors: errs,
		intent: IntentFor(data.Identity()),
	}
}

func (f *Form[T]) Intent() Intent {
	return f.intent
}

// AddFieldError attaches msg to field and marks the form invalid.
func (f *Form[T]) AddFieldError(field, msg string) {
	f.Errors.Add(field, msg)
	f.Valid = false
}

// AddFormError marks the form invalid with msg as the form level message, for
// failures that aren't tied to a field.
func (f *Form[T]) AddFormError(msg string) {
	f.Message = msg
	f.Valid = false
}

func (f *Form[T]) SetMessage(msg any) {
	f.Message = msg
}

const (
	SpecificationFormID = "create-specification-form"
	ProjectFormID       = "create-project-form"
)

func SpecificationForm(in schema.Input) *Form[msmodel.Specification] {
	spec, errs := schema.ParseSpecification(in)
	return New(SpecificationFormID, spec, errs)
}

func ProjectForm(in schema.Input) *Form[msmodel.Project] {
	project, errs := schema.ParseProject(in)
	return New(ProjectFormID, project, errs)
}
