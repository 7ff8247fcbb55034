package validation

import (
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validator  *validator.Validate
	Translator ut.Translator
)

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)

	var found bool
	Translator, found = uni.GetTranslator("en")

	if !found {
		panic("translator en not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Translator); err != nil {
		panic(err)
	}

	if err := Validator.RegisterValidation("fromtoday", fromToday); err != nil {
		panic(err)
	}

	addCustomTranslations()
}

// fromToday accepts dates from today onward, compared at date precision
// so a due date of today is still valid late in the evening.
func fromToday(fl validator.FieldLevel) bool {
	due, ok := fl.Field().Interface().(time.Time)

	if !ok {
		return false
	}

	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	dy, dm, dd := due.Date()
	dueDay := time.Date(dy, dm, dd, 0, 0, 0, 0, time.Local)

	return !dueDay.Before(today)
}

func addCustomTranslations() {
	Validator.RegisterTranslation("required", Translator, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is required", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", getFieldName(fe.Field()))
		return t
	})

	Validator.RegisterTranslation("max", Translator, func(ut ut.Translator) error {
		return ut.Add("max", "{0} must be at most {1} characters", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("max", getFieldName(fe.Field()), fe.Param())
		return t
	})

	Validator.RegisterTranslation("fromtoday", Translator, func(ut ut.Translator) error {
		return ut.Add("fromtoday", "Due date cannot be in the past.", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("fromtoday")
		return t
	})
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Title":       "Title",
		"Description": "Description",
		"DueDate":     "Due date",
		"Completed":   "Completed",
	}

	if name, exists := fieldNames[field]; exists {
		return name
	}

	return field
}

// fieldKeys maps struct fields to the form field names templates use.
var fieldKeys = map[string]string{
	"Title":       "title",
	"Description": "description",
	"DueDate":     "due_date",
	"Completed":   "completed",
}

// FormatValidationErrors flattens a validator error into form-field keyed
// messages for re-rendering. The first error per field wins.
func FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)

	if !ok {
		return errors
	}

	for _, fieldError := range validationErrors {
		key, exists := fieldKeys[fieldError.Field()]

		if !exists {
			key = fieldError.Field()
		}

		if _, seen := errors[key]; !seen {
			errors[key] = fieldError.Translate(Translator)
		}
	}

	return errors
}
