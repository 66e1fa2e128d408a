// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// ImportJobColumns holds the columns for the "import_job" table.
	ImportJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_label", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "RUNNING"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "pages", Type: field.TypeInt, Default: 0},
		{Name: "questions_extracted", Type: field.TypeInt, Default: 0},
		{Name: "questions_persisted", Type: field.TypeInt, Default: 0},
		{Name: "skipped_duplicate", Type: field.TypeInt, Default: 0},
		{Name: "images_linked", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "used_fallback", Type: field.TypeBool, Default: false},
		{Name: "from_cache", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// ImportJobTable holds the schema information for the "import_job" table.
	ImportJobTable = &schema.Table{
		Name:       "import_job",
		Columns:    ImportJobColumns,
		PrimaryKey: []*schema.Column{ImportJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[2], ImportJobColumns[3]},
			},
			{
				Name:    "importjob_source_label",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[1]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "choices", Type: field.TypeJSON},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "explanation", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "content_kind", Type: field.TypeString, Default: "plain"},
		{Name: "content_hash", Type: field.TypeBytes, Unique: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "source_label", Type: field.TypeString, Nullable: true},
		{Name: "image_refs", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeInt, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_categories_questions",
				Columns:    []*schema.Column{QuestionsColumns[12]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_source_label",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[8]},
			},
		},
	}
	// QuestionImagesColumns holds the columns for the "question_images" table.
	QuestionImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "locator", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "alt_text", Type: field.TypeString, Nullable: true},
		{Name: "question_id", Type: field.TypeUUID},
	}
	// QuestionImagesTable holds the schema information for the "question_images" table.
	QuestionImagesTable = &schema.Table{
		Name:       "question_images",
		Columns:    QuestionImagesColumns,
		PrimaryKey: []*schema.Column{QuestionImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_images_questions_images",
				Columns:    []*schema.Column{QuestionImagesColumns[4]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "questionimage_question_id_locator",
				Unique:  true,
				Columns: []*schema.Column{QuestionImagesColumns[4], QuestionImagesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		ImportJobTable,
		QuestionsTable,
		QuestionImagesTable,
	}
)

func init() {
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	ImportJobTable.Annotation = &entsql.Annotation{
		Table: "import_job",
	}
	QuestionsTable.ForeignKeys[0].RefTable = CategoriesTable
	QuestionsTable.Annotation = &entsql.Annotation{
		Table: "questions",
	}
	QuestionImagesTable.ForeignKeys[0].RefTable = QuestionsTable
	QuestionImagesTable.Annotation = &entsql.Annotation{
		Table: "question_images",
	}
}
