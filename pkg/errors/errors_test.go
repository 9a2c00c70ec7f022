package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/roster/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	err := pkgerrors.NewNotFoundError("sheet", "Guardians")
	assert.Equal(t, `sheet "Guardians" not found`, err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))

	wrapped := fmt.Errorf("read persons.xlsx: %w", err)
	assert.True(t, pkgerrors.IsNotFound(wrapped))
	assert.False(t, pkgerrors.IsValidationError(wrapped))
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ValidationError
		want string
	}{
		{
			name: "with field",
			err:  pkgerrors.NewValidationError("output_format", "ods", "must be one of xlsx, csv, json, yaml"),
			want: "invalid output_format: must be one of xlsx, csv, json, yaml",
		},
		{
			name: "without field",
			err:  &pkgerrors.ValidationError{Message: "no input files"},
			want: "invalid input: no input files",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, pkgerrors.IsValidationError(tt.err))
			assert.False(t, pkgerrors.IsMissingColumns(tt.err))
		})
	}
}

func TestMissingColumnsError(t *testing.T) {
	t.Run("lists every column", func(t *testing.T) {
		err := pkgerrors.NewMissingColumnsError("contacts", []string{"PARENT1_NAME", "PARENT2_PHONE"})
		assert.Equal(t, "table contacts is missing required columns: PARENT1_NAME, PARENT2_PHONE", err.Error())
	})

	t.Run("without table", func(t *testing.T) {
		err := &pkgerrors.MissingColumnsError{Columns: []string{"IDENTIFIER"}}
		assert.Equal(t, "missing required columns: IDENTIFIER", err.Error())
	})

	t.Run("matches both sentinels", func(t *testing.T) {
		err := fmt.Errorf("merge: %w", pkgerrors.NewMissingColumnsError("persons", []string{"GENDER"}))
		assert.True(t, pkgerrors.IsMissingColumns(err))
		assert.True(t, pkgerrors.IsValidationError(err))

		var target *pkgerrors.MissingColumnsError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, "persons", target.Table)
	})

	t.Run("joined tables", func(t *testing.T) {
		err := pkgerrors.Join(
			pkgerrors.NewMissingColumnsError("persons", []string{"GENDER"}),
			pkgerrors.NewMissingColumnsError("contacts", []string{"PERSON_NAME"}),
		)
		assert.True(t, pkgerrors.IsMissingColumns(err))
		assert.Contains(t, err.Error(), "GENDER")
		assert.Contains(t, err.Error(), "PERSON_NAME")
	})
}

func TestConfigError(t *testing.T) {
	inner := pkgerrors.NewValidationError("identifier_width", 0, "must be positive")
	err := pkgerrors.NewConfigError("identifier_width", "must be positive", inner)

	assert.Equal(t, "config identifier_width: must be positive", err.Error())
	assert.True(t, pkgerrors.IsValidationError(err))

	plain := &pkgerrors.ConfigError{Message: "empty"}
	assert.Equal(t, "config: empty", plain.Error())
	assert.Nil(t, plain.Unwrap())
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")

	err := pkgerrors.NewIOError("read", "/tmp/persons.xlsx", base)
	assert.Equal(t, "read /tmp/persons.xlsx: permission denied", err.Error())
	assert.Equal(t, base, err.Unwrap())

	noPath := pkgerrors.NewIOError("flush", "", base)
	assert.Equal(t, "flush: permission denied", noPath.Error())

	wrapped := pkgerrors.WrapIO("rename", "out.csv", errors.New("cross-device link"))
	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(wrapped, &ioErr))
	assert.Equal(t, "rename", ioErr.Operation)
	assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "with position",
			err:  &pkgerrors.ParseError{Format: "csv", File: "contacts.csv", Line: 10, Column: 5, Message: "bare quote"},
			want: "csv: contacts.csv:10:5: bare quote",
		},
		{
			name: "file only",
			err:  pkgerrors.NewParseError("xlsx", "persons.xlsx", "zip: not a valid zip file", nil),
			want: "xlsx: persons.xlsx: zip: not a valid zip file",
		},
		{
			name: "format only",
			err:  &pkgerrors.ParseError{Format: "yaml", Message: "syntax error"},
			want: "yaml: syntax error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}

	base := errors.New("EOF")
	wrapped := pkgerrors.WrapParse("csv", "data.csv", base)
	assert.True(t, errors.Is(wrapped, base))
	assert.Nil(t, pkgerrors.WrapParse("yaml", "file.yaml", nil))

	unsupported := pkgerrors.NewParseError("ods", "a.ods", "cannot read", pkgerrors.ErrUnsupportedFormat)
	assert.True(t, pkgerrors.IsUnsupportedFormat(unsupported))
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.WrapResource("save", "database", "roster.db", errors.New("locked"))
	assert.Equal(t, "save database roster.db: locked", err.Error())

	noID := pkgerrors.NewResourceError("write", "metrics", "", errors.New("read-only"))
	assert.Equal(t, "write metrics: read-only", noID.Error())
	assert.Nil(t, pkgerrors.WrapResource("save", "database", "", nil))
}

func TestHelpers(t *testing.T) {
	assert.True(t, pkgerrors.IsCanceled(fmt.Errorf("after 3 rows: %w", pkgerrors.ErrCanceled)))
	assert.False(t, pkgerrors.IsNotFound(errors.New("not found")))

	err := pkgerrors.WrapValidation("format", errors.New("unknown"))
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.Nil(t, pkgerrors.WrapValidation("format", nil))
}

func TestErrorChaining(t *testing.T) {
	base := errors.New("no space left on device")
	ioErr := pkgerrors.WrapIO("write", "out.xlsx", base)
	resErr := pkgerrors.WrapResource("export", "table", "out.xlsx", ioErr)

	var target *pkgerrors.IOError
	assert.True(t, pkgerrors.As(resErr, &target))
	assert.Equal(t, "write", target.Operation)
	assert.True(t, pkgerrors.Is(resErr, base))
}
