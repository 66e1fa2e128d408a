// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hansaki/quizforge/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldID, id))
}

// SourceLabel applies equality check predicate on the "source_label" field. It's identical to SourceLabelEQ.
func SourceLabel(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSourceLabel, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Pages applies equality check predicate on the "pages" field. It's identical to PagesEQ.
func Pages(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldPages, v))
}

// QuestionsExtracted applies equality check predicate on the "questions_extracted" field. It's identical to QuestionsExtractedEQ.
func QuestionsExtracted(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldQuestionsExtracted, v))
}

// QuestionsPersisted applies equality check predicate on the "questions_persisted" field. It's identical to QuestionsPersistedEQ.
func QuestionsPersisted(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldQuestionsPersisted, v))
}

// SkippedDuplicate applies equality check predicate on the "skipped_duplicate" field. It's identical to SkippedDuplicateEQ.
func SkippedDuplicate(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSkippedDuplicate, v))
}

// ImagesLinked applies equality check predicate on the "images_linked" field. It's identical to ImagesLinkedEQ.
func ImagesLinked(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldImagesLinked, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFailed, v))
}

// UsedFallback applies equality check predicate on the "used_fallback" field. It's identical to UsedFallbackEQ.
func UsedFallback(v bool) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldUsedFallback, v))
}

// FromCache applies equality check predicate on the "from_cache" field. It's identical to FromCacheEQ.
func FromCache(v bool) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFromCache, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// SourceLabelEQ applies the EQ predicate on the "source_label" field.
func SourceLabelEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSourceLabel, v))
}

// SourceLabelNEQ applies the NEQ predicate on the "source_label" field.
func SourceLabelNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldSourceLabel, v))
}

// SourceLabelIn applies the In predicate on the "source_label" field.
func SourceLabelIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldSourceLabel, vs...))
}

// SourceLabelNotIn applies the NotIn predicate on the "source_label" field.
func SourceLabelNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldSourceLabel, vs...))
}

// SourceLabelGT applies the GT predicate on the "source_label" field.
func SourceLabelGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldSourceLabel, v))
}

// SourceLabelGTE applies the GTE predicate on the "source_label" field.
func SourceLabelGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldSourceLabel, v))
}

// SourceLabelLT applies the LT predicate on the "source_label" field.
func SourceLabelLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldSourceLabel, v))
}

// SourceLabelLTE applies the LTE predicate on the "source_label" field.
func SourceLabelLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldSourceLabel, v))
}

// SourceLabelContains applies the Contains predicate on the "source_label" field.
func SourceLabelContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldSourceLabel, v))
}

// SourceLabelHasPrefix applies the HasPrefix predicate on the "source_label" field.
func SourceLabelHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldSourceLabel, v))
}

// SourceLabelHasSuffix applies the HasSuffix predicate on the "source_label" field.
func SourceLabelHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldSourceLabel, v))
}

// SourceLabelEqualFold applies the EqualFold predicate on the "source_label" field.
func SourceLabelEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldSourceLabel, v))
}

// SourceLabelContainsFold applies the ContainsFold predicate on the "source_label" field.
func SourceLabelContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldSourceLabel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldFinishedAt))
}

// PagesEQ applies the EQ predicate on the "pages" field.
func PagesEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldPages, v))
}

// PagesNEQ applies the NEQ predicate on the "pages" field.
func PagesNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldPages, v))
}

// PagesIn applies the In predicate on the "pages" field.
func PagesIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldPages, vs...))
}

// PagesNotIn applies the NotIn predicate on the "pages" field.
func PagesNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldPages, vs...))
}

// PagesGT applies the GT predicate on the "pages" field.
func PagesGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldPages, v))
}

// PagesGTE applies the GTE predicate on the "pages" field.
func PagesGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldPages, v))
}

// PagesLT applies the LT predicate on the "pages" field.
func PagesLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldPages, v))
}

// PagesLTE applies the LTE predicate on the "pages" field.
func PagesLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldPages, v))
}

// QuestionsExtractedEQ applies the EQ predicate on the "questions_extracted" field.
func QuestionsExtractedEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldQuestionsExtracted, v))
}

// QuestionsExtractedNEQ applies the NEQ predicate on the "questions_extracted" field.
func QuestionsExtractedNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldQuestionsExtracted, v))
}

// QuestionsExtractedIn applies the In predicate on the "questions_extracted" field.
func QuestionsExtractedIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldQuestionsExtracted, vs...))
}

// QuestionsExtractedNotIn applies the NotIn predicate on the "questions_extracted" field.
func QuestionsExtractedNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldQuestionsExtracted, vs...))
}

// QuestionsExtractedGT applies the GT predicate on the "questions_extracted" field.
func QuestionsExtractedGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldQuestionsExtracted, v))
}

// QuestionsExtractedGTE applies the GTE predicate on the "questions_extracted" field.
func QuestionsExtractedGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldQuestionsExtracted, v))
}

// QuestionsExtractedLT applies the LT predicate on the "questions_extracted" field.
func QuestionsExtractedLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldQuestionsExtracted, v))
}

// QuestionsExtractedLTE applies the LTE predicate on the "questions_extracted" field.
func QuestionsExtractedLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldQuestionsExtracted, v))
}

// QuestionsPersistedEQ applies the EQ predicate on the "questions_persisted" field.
func QuestionsPersistedEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldQuestionsPersisted, v))
}

// QuestionsPersistedNEQ applies the NEQ predicate on the "questions_persisted" field.
func QuestionsPersistedNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldQuestionsPersisted, v))
}

// QuestionsPersistedIn applies the In predicate on the "questions_persisted" field.
func QuestionsPersistedIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldQuestionsPersisted, vs...))
}

// QuestionsPersistedNotIn applies the NotIn predicate on the "questions_persisted" field.
func QuestionsPersistedNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldQuestionsPersisted, vs...))
}

// QuestionsPersistedGT applies the GT predicate on the "questions_persisted" field.
func QuestionsPersistedGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldQuestionsPersisted, v))
}

// QuestionsPersistedGTE applies the GTE predicate on the "questions_persisted" field.
func QuestionsPersistedGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldQuestionsPersisted, v))
}

// QuestionsPersistedLT applies the LT predicate on the "questions_persisted" field.
func QuestionsPersistedLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldQuestionsPersisted, v))
}

// QuestionsPersistedLTE applies the LTE predicate on the "questions_persisted" field.
func QuestionsPersistedLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldQuestionsPersisted, v))
}

// SkippedDuplicateEQ applies the EQ predicate on the "skipped_duplicate" field.
func SkippedDuplicateEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSkippedDuplicate, v))
}

// SkippedDuplicateNEQ applies the NEQ predicate on the "skipped_duplicate" field.
func SkippedDuplicateNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldSkippedDuplicate, v))
}

// SkippedDuplicateIn applies the In predicate on the "skipped_duplicate" field.
func SkippedDuplicateIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldSkippedDuplicate, vs...))
}

// SkippedDuplicateNotIn applies the NotIn predicate on the "skipped_duplicate" field.
func SkippedDuplicateNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldSkippedDuplicate, vs...))
}

// SkippedDuplicateGT applies the GT predicate on the "skipped_duplicate" field.
func SkippedDuplicateGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldSkippedDuplicate, v))
}

// SkippedDuplicateGTE applies the GTE predicate on the "skipped_duplicate" field.
func SkippedDuplicateGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldSkippedDuplicate, v))
}

// SkippedDuplicateLT applies the LT predicate on the "skipped_duplicate" field.
func SkippedDuplicateLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldSkippedDuplicate, v))
}

// SkippedDuplicateLTE applies the LTE predicate on the "skipped_duplicate" field.
func SkippedDuplicateLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldSkippedDuplicate, v))
}

// ImagesLinkedEQ applies the EQ predicate on the "images_linked" field.
func ImagesLinkedEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldImagesLinked, v))
}

// ImagesLinkedNEQ applies the NEQ predicate on the "images_linked" field.
func ImagesLinkedNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldImagesLinked, v))
}

// ImagesLinkedIn applies the In predicate on the "images_linked" field.
func ImagesLinkedIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldImagesLinked, vs...))
}

// ImagesLinkedNotIn applies the NotIn predicate on the "images_linked" field.
func ImagesLinkedNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldImagesLinked, vs...))
}

// ImagesLinkedGT applies the GT predicate on the "images_linked" field.
func ImagesLinkedGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldImagesLinked, v))
}

// ImagesLinkedGTE applies the GTE predicate on the "images_linked" field.
func ImagesLinkedGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldImagesLinked, v))
}

// ImagesLinkedLT applies the LT predicate on the "images_linked" field.
func ImagesLinkedLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldImagesLinked, v))
}

// ImagesLinkedLTE applies the LTE predicate on the "images_linked" field.
func ImagesLinkedLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldImagesLinked, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFailed, v))
}

// UsedFallbackEQ applies the EQ predicate on the "used_fallback" field.
func UsedFallbackEQ(v bool) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldUsedFallback, v))
}

// UsedFallbackNEQ applies the NEQ predicate on the "used_fallback" field.
func UsedFallbackNEQ(v bool) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldUsedFallback, v))
}

// FromCacheEQ applies the EQ predicate on the "from_cache" field.
func FromCacheEQ(v bool) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFromCache, v))
}

// FromCacheNEQ applies the NEQ predicate on the "from_cache" field.
func FromCacheNEQ(v bool) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFromCache, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.NotPredicates(p))
}
