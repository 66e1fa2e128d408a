// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// ImportJob is the predicate function for importjob builders.
type ImportJob func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionImage is the predicate function for questionimage builders.
type QuestionImage func(*sql.Selector)
