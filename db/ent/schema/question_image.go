package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type QuestionImage struct{ ent.Schema }

func (QuestionImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "question_images"},
	}
}

func (QuestionImage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("question_id", uuid.UUID{}),
		field.String("locator").NotEmpty(),
		field.Int("position").Default(0).NonNegative(),
		field.String("alt_text").Optional(),
	}
}

func (QuestionImage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("images").
			Field("question_id").
			Unique().
			Required(),
	}
}

func (QuestionImage) Indexes() []ent.Index {
	return []ent.Index{
		// Re-linking the same image to the same question is a no-op.
		index.Fields("question_id", "locator").Unique(),
	}
}
