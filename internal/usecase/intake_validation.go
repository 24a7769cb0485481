package usecase

import (
	"errors"
	"fmt"
	"html"
	"prowash_quote/internal/domain/entities"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var ErrValidationFailed = errors.New("intake validation failed")

// Field keys used in validation results; they match the form and JSON names.
const (
	FieldName             = "name"
	FieldPhone            = "phone"
	FieldAddress          = "address"
	FieldPropertyType     = "propertyType"
	FieldPropertySize     = "propertySize"
	FieldSurfaceCondition = "surfaceCondition"
)

// IntakeForm is the raw, unvalidated input of the intake form. PropertySize
// is nil when the visitor left it empty.
type IntakeForm struct {
	Name               string   `json:"name"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	PropertyType       string   `json:"propertyType"`
	PropertySize       *float64 `json:"propertySize"`
	SurfaceCondition   int      `json:"surfaceCondition"`
	AdditionalServices []int    `json:"additionalServices"`
}

// DefaultIntakeForm is the state of a fresh (or reset) intake form.
func DefaultIntakeForm() IntakeForm {
	return IntakeForm{
		SurfaceCondition:   entities.DefaultSurfaceCondition,
		AdditionalServices: []int{},
	}
}

// ValidationError lists the messages for every field that failed.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

type fieldConstraint struct {
	field   string
	tag     string
	message string
	value   func(f IntakeForm) any
}

// intakeConstraints is evaluated in order; each field reports at most one
// message.
var intakeConstraints = []fieldConstraint{
	{field: FieldName, tag: "required", message: "Name is required.",
		value: func(f IntakeForm) any { return f.Name }},
	{field: FieldPhone, tag: "required", message: "Phone is required.",
		value: func(f IntakeForm) any { return f.Phone }},
	{field: FieldAddress, tag: "required", message: "Address is required.",
		value: func(f IntakeForm) any { return f.Address }},
	{field: FieldPropertyType, tag: "required,oneof=residential commercial", message: "Please select a property type.",
		value: func(f IntakeForm) any { return f.PropertyType }},
	{field: FieldPropertySize, tag: "gt=0", message: "Property size must be greater than zero.",
		value: propertySizeValue},
	{field: FieldPropertySize, tag: fmt.Sprintf("lte=%d", entities.MaxPropertySize), message: maxPropertySizeMessage,
		value: propertySizeValue},
	{field: FieldSurfaceCondition, tag: "min=1,max=5", message: "Surface condition must be between 1 and 5.",
		value: func(f IntakeForm) any { return f.SurfaceCondition }},
}

var maxPropertySizeMessage = fmt.Sprintf("Property size must not exceed %d sqft.", entities.MaxPropertySize)

func propertySizeValue(f IntakeForm) any {
	if f.PropertySize == nil {
		return float64(0)
	}
	return *f.PropertySize
}

// maxSanitizePasses bounds sanitizeText; input still changing after that
// many passes is treated as empty.
const maxSanitizePasses = 8

var (
	validateOnce sync.Once
	validate     *validator.Validate

	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func intakeValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// sanitizeText strips markup from free text. The strict policy escapes
// entities, which are turned back into plain characters. Unescaping can
// surface new markup, so passes repeat until the text is a fixed point and
// re-sanitizing a stored record never changes it.
func sanitizeText(raw string) string {
	out := strings.TrimSpace(raw)
	for i := 0; i < maxSanitizePasses; i++ {
		if out == "" {
			return ""
		}
		next := strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(out)))
		if next == out {
			return out
		}
		out = next
	}
	return ""
}

// ValidateIntake checks a raw form against the intake constraints. On success
// it returns the normalised record; otherwise a *ValidationError.
func ValidateIntake(form IntakeForm) (entities.IntakeRecord, error) {
	form.Name = sanitizeText(form.Name)
	form.Phone = sanitizeText(form.Phone)
	form.Address = sanitizeText(form.Address)
	form.PropertyType = strings.ToLower(strings.TrimSpace(form.PropertyType))

	v := intakeValidator()
	fields := map[string][]string{}
	for _, c := range intakeConstraints {
		if _, failed := fields[c.field]; failed {
			continue
		}
		if err := v.Var(c.value(form), c.tag); err != nil {
			fields[c.field] = append(fields[c.field], c.message)
		}
	}
	if len(fields) > 0 {
		return entities.IntakeRecord{}, &ValidationError{Fields: fields}
	}

	return entities.IntakeRecord{
		Name:               form.Name,
		Phone:              form.Phone,
		Address:            form.Address,
		PropertyType:       entities.PropertyType(form.PropertyType),
		PropertySize:       *form.PropertySize,
		SurfaceCondition:   form.SurfaceCondition,
		AdditionalServices: uniqueServiceIDs(form.AdditionalServices),
	}, nil
}

// ValidateRecord re-checks a record built elsewhere (e.g. loaded from a
// session store) against the same constraints.
func ValidateRecord(record entities.IntakeRecord) error {
	_, err := ValidateIntake(FormFromRecord(record))
	return err
}

// FormFromRecord turns a record back into form values, e.g. to prefill.
func FormFromRecord(record entities.IntakeRecord) IntakeForm {
	size := record.PropertySize
	services := make([]int, len(record.AdditionalServices))
	copy(services, record.AdditionalServices)
	return IntakeForm{
		Name:               record.Name,
		Phone:              record.Phone,
		Address:            record.Address,
		PropertyType:       string(record.PropertyType),
		PropertySize:       &size,
		SurfaceCondition:   record.SurfaceCondition,
		AdditionalServices: services,
	}
}

func uniqueServiceIDs(ids []int) []int {
	out := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
