// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "category_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_category_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_category_id_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4], AnswerEventsColumns[6]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "category_parent_id",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[2]},
			},
		},
	}
	// ExamEventsColumns holds the columns for the "exam_events" table.
	ExamEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "leg", Type: field.TypeString},
		{Name: "total", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
	}
	// ExamEventsTable holds the schema information for the "exam_events" table.
	ExamEventsTable = &schema.Table{
		Name:       "exam_events",
		Columns:    ExamEventsColumns,
		PrimaryKey: []*schema.Column{ExamEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[1]},
			},
			{
				Name:    "examevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[2]},
			},
			{
				Name:    "examevent_leg",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[3]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "category_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
		{Name: "choices", Type: field.TypeJSON},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Nullable: true},
		{Name: "mock_only", Type: field.TypeBool, Default: false},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_category_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_category_id_mock_only",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[6]},
			},
		},
	}
	// ScheduledCardsColumns holds the columns for the "scheduled_cards" table.
	ScheduledCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "box", Type: field.TypeInt, Default: 0},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "next_review", Type: field.TypeTime},
	}
	// ScheduledCardsTable holds the schema information for the "scheduled_cards" table.
	ScheduledCardsTable = &schema.Table{
		Name:       "scheduled_cards",
		Columns:    ScheduledCardsColumns,
		PrimaryKey: []*schema.Column{ScheduledCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledcard_next_review",
				Unique:  false,
				Columns: []*schema.Column{ScheduledCardsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CategoriesTable,
		ExamEventsTable,
		QuestionsTable,
		ScheduledCardsTable,
	}
)

func init() {
}
