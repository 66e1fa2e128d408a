package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/hansaki/quizforge/constants"
	"github.com/hansaki/quizforge/db/ent/schema/utils"
)

type ImportJob struct{ ent.Schema }

func (ImportJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_job"},
	}
}

func (ImportJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("source_label").NotEmpty(),
		field.String("status").
			Default(string(constants.JobStatusRunning)).
			Validate(utils.EnumValidator(constants.StatusesAsStringSlice()...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.Int("pages").Default(0),
		field.Int("questions_extracted").Default(0),
		field.Int("questions_persisted").Default(0),
		field.Int("skipped_duplicate").Default(0),
		field.Int("images_linked").Default(0),
		field.Int("failed").Default(0),
		field.Bool("used_fallback").Default(false),
		field.Bool("from_cache").Default(false),
		field.String("error_message").Optional().Nillable(),
	}
}

func (ImportJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("source_label"),
	}
}
