package validate_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster/cmd/roster/cmd/validate"
	"github.com/agentstation/roster/internal/appcontext"
	"github.com/agentstation/roster/internal/config"
	"github.com/agentstation/roster/pkg/errors"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	persons := write(t, dir, "persons.csv", "ID_NUMBER,BIRTH_DATE,GENDER,BIRTH_PLACE,BIRTH_COUNTRY\n1,,,,\n")
	good := write(t, dir, "contacts.csv", "IDENTIFIER,PERSON_NAME,PERSON_ADDRESS,PARENT1_NAME,PARENT1_ADDRESS,PARENT1_EMAIL,PARENT1_PHONE,PARENT2_NAME,PARENT2_ADDRESS,PARENT2_EMAIL,PARENT2_PHONE\n")
	bad := write(t, dir, "bad.csv", "ID_NUMBER,PERSON_NAME\n1,x\n")

	t.Run("valid", func(t *testing.T) {
		app := &appcontext.Mock{ConfigValue: &config.Config{Persons: persons, Contacts: good}, Format: "json"}
		cmd := validate.NewCommand(app)
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs(nil)

		require.NoError(t, cmd.Execute())

		var results validate.Results
		require.NoError(t, json.Unmarshal(out.Bytes(), &results))
		require.Len(t, results, 2)
		assert.Equal(t, "persons", results[0].Table)
		assert.Equal(t, 1, results[0].Rows)
		assert.Empty(t, results[1].Missing)
		assert.Contains(t, errOut.String(), "every required column")
	})

	t.Run("missing columns", func(t *testing.T) {
		app := &appcontext.Mock{ConfigValue: &config.Config{Persons: persons, Contacts: bad}, Format: "json"}
		cmd := validate.NewCommand(app)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(nil)

		err := cmd.Execute()
		require.Error(t, err)
		assert.True(t, errors.IsMissingColumns(err))

		var results validate.Results
		require.NoError(t, json.Unmarshal(out.Bytes(), &results))
		require.Len(t, results, 2)
		assert.Empty(t, results[0].Missing)
		assert.Contains(t, results[1].Missing, "IDENTIFIER")
		assert.Contains(t, results[1].Missing, "PARENT1_NAME")
		assert.NotContains(t, results[1].Missing, "PERSON_NAME")
	})
}
