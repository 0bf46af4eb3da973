package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rewiselabs/rewise_neet_backend/models"
)

// validateOpt checks an Opt field that carries a value against a validator
// tag. Absent and explicit-null fields pass untouched.
func validateOpt[T any](validate *validator.Validate, o models.Opt[T], tag string) error {
	if !o.Set || o.Null {
		return nil
	}
	return validate.Var(o.Value, tag)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// The update validators mirror the constraints of the matching create
// payloads, so a PATCH cannot store a value the POST would have rejected.

func validateUserUpdate(payload models.UserUpdate) error {
	validate := validator.New()
	return firstErr(
		validateOpt(validate, payload.Name, "min=1,max=255"),
		validateOpt(validate, payload.Mobile, "min=1,max=32"),
		validateOpt(validate, payload.Password, "min=6,max=255"),
		validateOpt(validate, payload.Role, "min=1,max=64"),
	)
}

func validateSubjectUpdate(payload models.SubjectUpdate) error {
	validate := validator.New()
	return validateOpt(validate, payload.SubjectName, "min=1")
}

func validateChapterUpdate(payload models.ChapterUpdate) error {
	validate := validator.New()
	return firstErr(
		validateOpt(validate, payload.No, "min=1"),
		validateOpt(validate, payload.Name, "min=1"),
		validateOpt(validate, payload.FormattedName, "min=1"),
	)
}

func validateTopicUpdate(payload models.TopicUpdate) error {
	validate := validator.New()
	return firstErr(
		validateOpt(validate, payload.No, "min=1"),
		validateOpt(validate, payload.Name, "min=1"),
		validateOpt(validate, payload.FormattedName, "min=1"),
	)
}

func validateOptionPatches(validate *validator.Validate, patches []models.OptionUpdate) error {
	for _, patch := range patches {
		if patch.ID <= 0 {
			return errors.New("option patches must carry an id")
		}
		if err := firstErr(
			validateOpt(validate, patch.Label, "min=1,max=50"),
			validateOpt(validate, patch.Text, "min=1"),
		); err != nil {
			return err
		}
	}
	return nil
}

func validateStageQuestionUpdate(payload models.StageQuestionUpdate) error {
	validate := validator.New()
	return firstErr(
		validateOpt(validate, payload.Source, "min=1,max=255"),
		validateOpt(validate, payload.Year, "min=1,max=50"),
		validateOpt(validate, payload.Subject, "min=1,max=255"),
		validateOpt(validate, payload.Chapter, "min=1,max=255"),
		validateOpt(validate, payload.Topic, "min=1,max=255"),
		validateOpt(validate, payload.QuestionNumber, "min=1,max=50"),
		validateOpt(validate, payload.QuestionText, "min=1"),
		validateOpt(validate, payload.Answer, "min=1,max=50"),
		validateOptionPatches(validate, payload.Options),
	)
}

func validateQuestionUpdate(payload models.QuestionUpdate) error {
	validate := validator.New()
	return firstErr(
		validateOpt(validate, payload.Source, "min=1,max=255"),
		validateOpt(validate, payload.Year, "min=1,max=50"),
		validateOpt(validate, payload.Subject, "min=1,max=255"),
		validateOpt(validate, payload.Chapter, "min=1,max=255"),
		validateOpt(validate, payload.Topic, "min=1,max=255"),
		validateOpt(validate, payload.QuestionNumber, "min=1,max=50"),
		validateOpt(validate, payload.QuestionText, "min=1"),
		validateOpt(validate, payload.Answer, "min=1,max=50"),
		validateOptionPatches(validate, payload.Options),
	)
}

func validateMockTestUpdate(payload models.MockTestUpdate) error {
	validate := validator.New()
	return validateOpt(validate, payload.TestStatus, "min=1,max=50")
}

func validateTestSettingsUpdate(payload models.TestSettingsUpdate) error {
	validate := validator.New()
	return firstErr(
		validateOpt(validate, payload.Key, "min=1"),
		validateOpt(validate, payload.Value, "min=1"),
	)
}
