package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/hansaki/quizforge/constants"
	"github.com/hansaki/quizforge/db/ent/schema/utils"
)

type Question struct{ ent.Schema }

func (Question) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "questions"},
	}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Int("category_id").Optional().Nillable(),
		field.String("content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Strings("choices"),
		field.Int("correct_index").NonNegative(),
		field.String("explanation").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("difficulty").
			Range(constants.MinDifficulty, constants.MaxDifficulty),
		field.String("content_kind").
			Default(string(constants.KindPlain)).
			Validate(utils.EnumValidator(constants.KindsAsStringSlice()...)),
		field.Bytes("content_hash").NotEmpty().Unique().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("source_label").Optional(),
		field.Strings("image_refs").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY questions -> ONE category (FK: questions.category_id)
		edge.From("category", Category.Type).
			Ref("questions").
			Field("category_id").
			Unique(),
		// ONE question -> MANY images
		edge.To("images", QuestionImage.Type),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_label"),
	}
}
