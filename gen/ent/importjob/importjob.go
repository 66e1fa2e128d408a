// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the importjob type in the database.
	Label = "import_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceLabel holds the string denoting the source_label field in the database.
	FieldSourceLabel = "source_label"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldPages holds the string denoting the pages field in the database.
	FieldPages = "pages"
	// FieldQuestionsExtracted holds the string denoting the questions_extracted field in the database.
	FieldQuestionsExtracted = "questions_extracted"
	// FieldQuestionsPersisted holds the string denoting the questions_persisted field in the database.
	FieldQuestionsPersisted = "questions_persisted"
	// FieldSkippedDuplicate holds the string denoting the skipped_duplicate field in the database.
	FieldSkippedDuplicate = "skipped_duplicate"
	// FieldImagesLinked holds the string denoting the images_linked field in the database.
	FieldImagesLinked = "images_linked"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldUsedFallback holds the string denoting the used_fallback field in the database.
	FieldUsedFallback = "used_fallback"
	// FieldFromCache holds the string denoting the from_cache field in the database.
	FieldFromCache = "from_cache"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the importjob in the database.
	Table = "import_job"
)

// Columns holds all SQL columns for importjob fields.
var Columns = []string{
	FieldID,
	FieldSourceLabel,
	FieldStatus,
	FieldStartedAt,
	FieldFinishedAt,
	FieldPages,
	FieldQuestionsExtracted,
	FieldQuestionsPersisted,
	FieldSkippedDuplicate,
	FieldImagesLinked,
	FieldFailed,
	FieldUsedFallback,
	FieldFromCache,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceLabelValidator is a validator for the "source_label" field. It is called by the builders before save.
	SourceLabelValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultPages holds the default value on creation for the "pages" field.
	DefaultPages int
	// DefaultQuestionsExtracted holds the default value on creation for the "questions_extracted" field.
	DefaultQuestionsExtracted int
	// DefaultQuestionsPersisted holds the default value on creation for the "questions_persisted" field.
	DefaultQuestionsPersisted int
	// DefaultSkippedDuplicate holds the default value on creation for the "skipped_duplicate" field.
	DefaultSkippedDuplicate int
	// DefaultImagesLinked holds the default value on creation for the "images_linked" field.
	DefaultImagesLinked int
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// DefaultUsedFallback holds the default value on creation for the "used_fallback" field.
	DefaultUsedFallback bool
	// DefaultFromCache holds the default value on creation for the "from_cache" field.
	DefaultFromCache bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ImportJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceLabel orders the results by the source_label field.
func BySourceLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLabel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByPages orders the results by the pages field.
func ByPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPages, opts...).ToFunc()
}

// ByQuestionsExtracted orders the results by the questions_extracted field.
func ByQuestionsExtracted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsExtracted, opts...).ToFunc()
}

// ByQuestionsPersisted orders the results by the questions_persisted field.
func ByQuestionsPersisted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsPersisted, opts...).ToFunc()
}

// BySkippedDuplicate orders the results by the skipped_duplicate field.
func BySkippedDuplicate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkippedDuplicate, opts...).ToFunc()
}

// ByImagesLinked orders the results by the images_linked field.
func ByImagesLinked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagesLinked, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// ByUsedFallback orders the results by the used_fallback field.
func ByUsedFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedFallback, opts...).ToFunc()
}

// ByFromCache orders the results by the from_cache field.
func ByFromCache(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromCache, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
