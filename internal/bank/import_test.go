package bank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkoehler/skyprep/internal/store"
)

// fakeSaver records saved entries in memory.
type fakeSaver struct {
	categories []store.Category
	questions  []store.Question
}

func (f *fakeSaver) SaveCategory(_ context.Context, c store.Category) error {
	f.categories = append(f.categories, c)
	return nil
}

func (f *fakeSaver) SaveQuestion(_ context.Context, q store.Question) error {
	f.questions = append(f.questions, q)
	return nil
}

const validBank = `{
	"format": "1.2.0",
	"categories": [
		{"id": "meteorology", "name": "Meteorology"},
		{"id": "met-clouds", "name": "Clouds", "parent": "meteorology"}
	],
	"questions": [
		{
			"id": "q-cumulus",
			"category": "met-clouds",
			"text": "Which cloud type indicates strong convection?",
			"choices": ["Cumulonimbus", "Cirrus", "Stratus"],
			"answer": "Cumulonimbus",
			"explanation": "Towering vertical development signals convection."
		},
		{
			"category": "met-clouds",
			"text": "Which cloud forms a uniform grey layer?",
			"choices": ["Stratus", "Cirrus"],
			"answer": "Stratus",
			"mock_only": true
		}
	]
}`

func TestParse_ValidBank(t *testing.T) {
	b, err := Parse([]byte(validBank))
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", b.Format)
	assert.Len(t, b.Categories, 2)
	assert.Len(t, b.Questions, 2)
	assert.Equal(t, "meteorology", b.Categories[1].Parent)
	assert.True(t, b.Questions[1].MockOnly)
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"format": `))
	require.Error(t, err)
}

func TestParse_RejectsSchemaViolation(t *testing.T) {
	// choices requires at least two entries
	_, err := Parse([]byte(`{
		"format": "1.0.0",
		"categories": [{"id": "c", "name": "C"}],
		"questions": [{"category": "c", "text": "?", "choices": ["only"], "answer": "only"}]
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestParse_RejectsUnsupportedFormatMajor(t *testing.T) {
	_, err := Parse([]byte(`{"format": "2.0.0", "categories": [], "questions": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestParse_RejectsInvalidFormatVersion(t *testing.T) {
	_, err := Parse([]byte(`{"format": "one", "categories": [], "questions": []}`))
	require.Error(t, err)
}

func TestImport_SavesCategoriesAndQuestions(t *testing.T) {
	saver := &fakeSaver{}

	stats, err := Import(context.Background(), saver, []byte(validBank))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, 2, stats.Questions)
	assert.Equal(t, 1, stats.AssignedID)

	require.Len(t, saver.questions, 2)
	assert.Equal(t, "q-cumulus", saver.questions[0].ID)
	assert.NotEmpty(t, saver.questions[1].ID, "missing ids must be assigned")
	assert.Equal(t, "met-clouds", saver.questions[0].CategoryID)
	assert.Equal(t, "Cumulonimbus", saver.questions[0].CorrectAnswer)
}

func TestImport_RejectsUndeclaredParent(t *testing.T) {
	raw := []byte(`{
		"format": "1.0.0",
		"categories": [{"id": "sub", "name": "Sub", "parent": "ghost"}],
		"questions": []
	}`)

	_, err := Import(context.Background(), &fakeSaver{}, raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared parent")
}

func TestImport_RejectsUndeclaredCategory(t *testing.T) {
	raw := []byte(`{
		"format": "1.0.0",
		"categories": [],
		"questions": [{"category": "ghost", "text": "?", "choices": ["a", "b"], "answer": "a"}]
	}`)

	_, err := Import(context.Background(), &fakeSaver{}, raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared category")
}

func TestImport_RejectsAnswerOutsideChoices(t *testing.T) {
	raw := []byte(`{
		"format": "1.0.0",
		"categories": [{"id": "c", "name": "C"}],
		"questions": [{"category": "c", "text": "?", "choices": ["a", "b"], "answer": "z"}]
	}`)

	_, err := Import(context.Background(), &fakeSaver{}, raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not among its choices")
}

func TestImport_NothingSavedOnValidationFailure(t *testing.T) {
	saver := &fakeSaver{}
	raw := []byte(`{
		"format": "1.0.0",
		"categories": [{"id": "c", "name": "C"}],
		"questions": [{"category": "ghost", "text": "?", "choices": ["a", "b"], "answer": "a"}]
	}`)

	_, err := Import(context.Background(), saver, raw)
	require.Error(t, err)
	assert.Empty(t, saver.categories)
	assert.Empty(t, saver.questions)
}
