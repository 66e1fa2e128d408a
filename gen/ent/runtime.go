// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hansaki/quizforge/db/ent/schema"
	"github.com/hansaki/quizforge/gen/ent/category"
	"github.com/hansaki/quizforge/gen/ent/importjob"
	"github.com/hansaki/quizforge/gen/ent/question"
	"github.com/hansaki/quizforge/gen/ent/questionimage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[0].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	importjobFields := schema.ImportJob{}.Fields()
	_ = importjobFields
	// importjobDescSourceLabel is the schema descriptor for source_label field.
	importjobDescSourceLabel := importjobFields[1].Descriptor()
	// importjob.SourceLabelValidator is a validator for the "source_label" field. It is called by the builders before save.
	importjob.SourceLabelValidator = importjobDescSourceLabel.Validators[0].(func(string) error)
	// importjobDescStatus is the schema descriptor for status field.
	importjobDescStatus := importjobFields[2].Descriptor()
	// importjob.DefaultStatus holds the default value on creation for the status field.
	importjob.DefaultStatus = importjobDescStatus.Default.(string)
	// importjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importjob.StatusValidator = importjobDescStatus.Validators[0].(func(string) error)
	// importjobDescStartedAt is the schema descriptor for started_at field.
	importjobDescStartedAt := importjobFields[3].Descriptor()
	// importjob.DefaultStartedAt holds the default value on creation for the started_at field.
	importjob.DefaultStartedAt = importjobDescStartedAt.Default.(func() time.Time)
	// importjobDescPages is the schema descriptor for pages field.
	importjobDescPages := importjobFields[5].Descriptor()
	// importjob.DefaultPages holds the default value on creation for the pages field.
	importjob.DefaultPages = importjobDescPages.Default.(int)
	// importjobDescQuestionsExtracted is the schema descriptor for questions_extracted field.
	importjobDescQuestionsExtracted := importjobFields[6].Descriptor()
	// importjob.DefaultQuestionsExtracted holds the default value on creation for the questions_extracted field.
	importjob.DefaultQuestionsExtracted = importjobDescQuestionsExtracted.Default.(int)
	// importjobDescQuestionsPersisted is the schema descriptor for questions_persisted field.
	importjobDescQuestionsPersisted := importjobFields[7].Descriptor()
	// importjob.DefaultQuestionsPersisted holds the default value on creation for the questions_persisted field.
	importjob.DefaultQuestionsPersisted = importjobDescQuestionsPersisted.Default.(int)
	// importjobDescSkippedDuplicate is the schema descriptor for skipped_duplicate field.
	importjobDescSkippedDuplicate := importjobFields[8].Descriptor()
	// importjob.DefaultSkippedDuplicate holds the default value on creation for the skipped_duplicate field.
	importjob.DefaultSkippedDuplicate = importjobDescSkippedDuplicate.Default.(int)
	// importjobDescImagesLinked is the schema descriptor for images_linked field.
	importjobDescImagesLinked := importjobFields[9].Descriptor()
	// importjob.DefaultImagesLinked holds the default value on creation for the images_linked field.
	importjob.DefaultImagesLinked = importjobDescImagesLinked.Default.(int)
	// importjobDescFailed is the schema descriptor for failed field.
	importjobDescFailed := importjobFields[10].Descriptor()
	// importjob.DefaultFailed holds the default value on creation for the failed field.
	importjob.DefaultFailed = importjobDescFailed.Default.(int)
	// importjobDescUsedFallback is the schema descriptor for used_fallback field.
	importjobDescUsedFallback := importjobFields[11].Descriptor()
	// importjob.DefaultUsedFallback holds the default value on creation for the used_fallback field.
	importjob.DefaultUsedFallback = importjobDescUsedFallback.Default.(bool)
	// importjobDescFromCache is the schema descriptor for from_cache field.
	importjobDescFromCache := importjobFields[12].Descriptor()
	// importjob.DefaultFromCache holds the default value on creation for the from_cache field.
	importjob.DefaultFromCache = importjobDescFromCache.Default.(bool)
	// importjobDescID is the schema descriptor for id field.
	importjobDescID := importjobFields[0].Descriptor()
	// importjob.DefaultID holds the default value on creation for the id field.
	importjob.DefaultID = importjobDescID.Default.(func() uuid.UUID)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescContent is the schema descriptor for content field.
	questionDescContent := questionFields[2].Descriptor()
	// question.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	question.ContentValidator = questionDescContent.Validators[0].(func(string) error)
	// questionDescCorrectIndex is the schema descriptor for correct_index field.
	questionDescCorrectIndex := questionFields[4].Descriptor()
	// question.CorrectIndexValidator is a validator for the "correct_index" field. It is called by the builders before save.
	question.CorrectIndexValidator = questionDescCorrectIndex.Validators[0].(func(int) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[6].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(int) error)
	// questionDescContentKind is the schema descriptor for content_kind field.
	questionDescContentKind := questionFields[7].Descriptor()
	// question.DefaultContentKind holds the default value on creation for the content_kind field.
	question.DefaultContentKind = questionDescContentKind.Default.(string)
	// question.ContentKindValidator is a validator for the "content_kind" field. It is called by the builders before save.
	question.ContentKindValidator = questionDescContentKind.Validators[0].(func(string) error)
	// questionDescContentHash is the schema descriptor for content_hash field.
	questionDescContentHash := questionFields[8].Descriptor()
	// question.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	question.ContentHashValidator = questionDescContentHash.Validators[0].(func([]byte) error)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[11].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionFields[12].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	questionimageFields := schema.QuestionImage{}.Fields()
	_ = questionimageFields
	// questionimageDescLocator is the schema descriptor for locator field.
	questionimageDescLocator := questionimageFields[2].Descriptor()
	// questionimage.LocatorValidator is a validator for the "locator" field. It is called by the builders before save.
	questionimage.LocatorValidator = questionimageDescLocator.Validators[0].(func(string) error)
	// questionimageDescPosition is the schema descriptor for position field.
	questionimageDescPosition := questionimageFields[3].Descriptor()
	// questionimage.DefaultPosition holds the default value on creation for the position field.
	questionimage.DefaultPosition = questionimageDescPosition.Default.(int)
	// questionimage.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	questionimage.PositionValidator = questionimageDescPosition.Validators[0].(func(int) error)
	// questionimageDescID is the schema descriptor for id field.
	questionimageDescID := questionimageFields[0].Descriptor()
	// questionimage.DefaultID holds the default value on creation for the id field.
	questionimage.DefaultID = questionimageDescID.Default.(func() uuid.UUID)
}
