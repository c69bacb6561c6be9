package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Category is a node in the two-level question taxonomy. Parent
// categories have an empty parent_id; subcategories reference theirs.
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable category identifier from the question bank"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.String("parent_id").
			Optional().
			Comment("Parent category id, empty for top-level categories"),
	}
}

func (Category) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id"),
	}
}
