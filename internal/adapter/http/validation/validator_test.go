package validation_test

import (
	"strings"
	"testing"
	"time"

	"todoweb/internal/adapter/http/validation"
	"todoweb/internal/core/domain"

	. "github.com/onsi/gomega"
)

func day(offset int) *time.Time {
	y, m, d := time.Now().Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.Local).AddDate(0, 0, offset)

	return &date
}

func TestValidator_PastDueDateRejected(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(domain.Todo{Title: "Task", DueDate: day(-1)})

	Expect(err).ToNot(BeNil())

	errors := validation.FormatValidationErrors(err)

	Expect(errors).To(HaveKeyWithValue("due_date", "Due date cannot be in the past."))
}

func TestValidator_TodayDueDateAccepted(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(domain.Todo{Title: "Task", DueDate: day(0)})

	Expect(err).To(BeNil())
}

func TestValidator_FutureDueDateAccepted(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(domain.Todo{Title: "Task", DueDate: day(30)})

	Expect(err).To(BeNil())
}

func TestValidator_MissingDueDateAccepted(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(domain.Todo{Title: "Task"})

	Expect(err).To(BeNil())
}

func TestValidator_MissingTitleRejected(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(domain.Todo{Title: ""})

	Expect(err).ToNot(BeNil())

	errors := validation.FormatValidationErrors(err)

	Expect(errors).To(HaveKeyWithValue("title", "Title is required"))
}

func TestValidator_OverlongTitleRejected(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(domain.Todo{Title: strings.Repeat("x", 201)})

	Expect(err).ToNot(BeNil())

	errors := validation.FormatValidationErrors(err)

	Expect(errors).To(HaveKey("title"))
	Expect(errors["title"]).To(ContainSubstring("at most 200"))
}

func TestValidator_TitleAtLimitAccepted(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(domain.Todo{Title: strings.Repeat("x", 200)})

	Expect(err).To(BeNil())
}
