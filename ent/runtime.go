// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tkoehler/skyprep/ent/answerevent"
	"github.com/tkoehler/skyprep/ent/category"
	"github.com/tkoehler/skyprep/ent/examevent"
	"github.com/tkoehler/skyprep/ent/question"
	"github.com/tkoehler/skyprep/ent/scheduledcard"
	"github.com/tkoehler/skyprep/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[0].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescCategoryID is the schema descriptor for category_id field.
	answereventDescCategoryID := answereventFields[1].Descriptor()
	// answerevent.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	answerevent.CategoryIDValidator = answereventDescCategoryID.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[2].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[4].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.IDValidator is a validator for the "id" field. It is called by the builders before save.
	category.IDValidator = categoryDescID.Validators[0].(func(string) error)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescLeg is the schema descriptor for leg field.
	exameventDescLeg := exameventFields[0].Descriptor()
	// examevent.LegValidator is a validator for the "leg" field. It is called by the builders before save.
	examevent.LegValidator = exameventDescLeg.Validators[0].(func(string) error)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCategoryID is the schema descriptor for category_id field.
	questionDescCategoryID := questionFields[1].Descriptor()
	// question.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	question.CategoryIDValidator = questionDescCategoryID.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[2].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionDescCorrectAnswer := questionFields[4].Descriptor()
	// question.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	question.CorrectAnswerValidator = questionDescCorrectAnswer.Validators[0].(func(string) error)
	// questionDescMockOnly is the schema descriptor for mock_only field.
	questionDescMockOnly := questionFields[6].Descriptor()
	// question.DefaultMockOnly holds the default value on creation for the mock_only field.
	question.DefaultMockOnly = questionDescMockOnly.Default.(bool)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
	scheduledcardFields := schema.ScheduledCard{}.Fields()
	_ = scheduledcardFields
	// scheduledcardDescBox is the schema descriptor for box field.
	scheduledcardDescBox := scheduledcardFields[1].Descriptor()
	// scheduledcard.DefaultBox holds the default value on creation for the box field.
	scheduledcard.DefaultBox = scheduledcardDescBox.Default.(int)
	// scheduledcardDescEaseFactor is the schema descriptor for ease_factor field.
	scheduledcardDescEaseFactor := scheduledcardFields[2].Descriptor()
	// scheduledcard.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	scheduledcard.DefaultEaseFactor = scheduledcardDescEaseFactor.Default.(float64)
	// scheduledcardDescIntervalDays is the schema descriptor for interval_days field.
	scheduledcardDescIntervalDays := scheduledcardFields[3].Descriptor()
	// scheduledcard.DefaultIntervalDays holds the default value on creation for the interval_days field.
	scheduledcard.DefaultIntervalDays = scheduledcardDescIntervalDays.Default.(int)
	// scheduledcardDescRepetitions is the schema descriptor for repetitions field.
	scheduledcardDescRepetitions := scheduledcardFields[4].Descriptor()
	// scheduledcard.DefaultRepetitions holds the default value on creation for the repetitions field.
	scheduledcard.DefaultRepetitions = scheduledcardDescRepetitions.Default.(int)
	// scheduledcardDescID is the schema descriptor for id field.
	scheduledcardDescID := scheduledcardFields[0].Descriptor()
	// scheduledcard.IDValidator is a validator for the "id" field. It is called by the builders before save.
	scheduledcard.IDValidator = scheduledcardDescID.Validators[0].(func(string) error)
}
