package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aclSchema() Schema {
	return Schema{
		"level": Enum("read", "write"),
		"type":  Enum("user", "group"),
		"name":  NonBlank(),
	}
}

func TestValidate_RequiresEveryKey(t *testing.T) {
	err := Validate(aclSchema(), map[string]any{"level": "read"})
	require.Error(t, err)

	errs := ValidationErrors(err)
	require.Len(t, errs, 2)
	// Sorted by key: name, type
	assert.Contains(t, errs[0].Error(), `"name"`)
	assert.Contains(t, errs[1].Error(), `"type"`)
}

func TestValidate_NilIsMissing(t *testing.T) {
	err := Validate(Schema{"name": String()}, map[string]any{"name": nil})
	require.Error(t, err)
	assert.Equal(t, "required", FirstError(err).Reason)
}

func TestValidate_EmptySchema(t *testing.T) {
	assert.NoError(t, Validate(nil, map[string]any{"x": 1}))
}

func TestValidatePresent_SkipsAbsentAndNull(t *testing.T) {
	data := map[string]any{
		"level": "write",
		"type":  nil,
	}
	assert.NoError(t, ValidatePresent(aclSchema(), data))
}

func TestValidatePresent_ReportsBadValues(t *testing.T) {
	data := map[string]any{
		"level": "admin",
		"type":  "robot",
		"name":  "editor",
	}
	err := ValidatePresent(aclSchema(), data)
	require.Error(t, err)

	first := FirstError(err)
	require.NotNil(t, first)
	assert.Equal(t, "level", first.Key)
	assert.Equal(t, "admin", first.Value)
	assert.Len(t, ValidationErrors(err), 2)
	assert.Contains(t, err.Error(), "2 validation errors")
}

func TestValidateFields(t *testing.T) {
	s := aclSchema()

	assert.NoError(t, ValidateFields(s, map[string]any{"level": "read"}))
	assert.NoError(t, ValidateFields(s, map[string]any{"level": "read"}, "level"))

	err := ValidateFields(s, map[string]any{}, "level", "unknown")
	require.Error(t, err)
	errs := ValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "required")
	assert.Contains(t, errs[1].Error(), "not defined in schema")
}

func TestFirstError_NotValidation(t *testing.T) {
	assert.Nil(t, FirstError(nil))
	assert.Nil(t, ValidationErrors(assert.AnError))
}
