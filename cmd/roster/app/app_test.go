package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/cmd/roster/cmd/columns"
	"github.com/agentstation/roster/internal/sheets"
	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
)

func newTestApp(t *testing.T, opts ...Option) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts = append([]Option{WithOutput(&stdout, &stderr), WithLogger(logging.NewNopLogger())}, opts...)
	app, err := New("1.0.0", "abc123", "2025-01-01", "test", opts...)
	require.NoError(t, err)
	return app, &stdout, &stderr
}

func TestNew(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2025-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Config())
	assert.NotNil(t, app.Logger())

	_, err := uuid.Parse(app.RunID())
	assert.NoError(t, err, "run id is a uuid")
}

func TestWithRunID(t *testing.T) {
	app, _, _ := newTestApp(t, WithRunID("fixed"))
	assert.Equal(t, "fixed", app.RunID())

	_, err := New("dev", "", "", "", WithRunID(""))
	assert.True(t, errors.IsValidationError(err))
}

func TestMergerIsShared(t *testing.T) {
	app, _, _ := newTestApp(t)

	m1, err := app.Merger()
	require.NoError(t, err)
	m2, err := app.Merger()
	require.NoError(t, err)
	assert.Same(t, m1, m2)

	custom, err := roster.New()
	require.NoError(t, err)
	app, _, _ = newTestApp(t, WithMerger(custom))
	got, err := app.Merger()
	require.NoError(t, err)
	assert.Same(t, custom, got)
}

func TestStoreRequiresPath(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.config.SQLitePath = ""

	_, err := app.Store()
	assert.Error(t, err)
	assert.NoError(t, app.Shutdown(context.Background()))
}

func TestStoreAndShutdown(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.config.SQLitePath = filepath.Join(t.TempDir(), "roster.db")

	s1, err := app.Store()
	require.NoError(t, err)
	s2, err := app.Store()
	require.NoError(t, err)
	assert.Same(t, s1, s2)

	assert.NoError(t, app.Shutdown(context.Background()))
	assert.Nil(t, app.store)
}

func TestExecuteVersion(t *testing.T) {
	app, stdout, _ := newTestApp(t)
	require.NoError(t, app.Execute(context.Background(), []string{"version", "-v"}))
	assert.Contains(t, stdout.String(), "roster 1.0.0")
	assert.Contains(t, stdout.String(), "commit:   abc123")
}

func TestExecuteColumns(t *testing.T) {
	app, stdout, _ := newTestApp(t)
	require.NoError(t, app.Execute(context.Background(), []string{"columns", "-o", "json"}))

	var got columns.Layout
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, columns.Current(), got)
}

func TestExecuteRejectsUnknownFormat(t *testing.T) {
	app, _, _ := newTestApp(t)
	err := app.Execute(context.Background(), []string{"columns", "-o", "xml"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestExecuteMerge(t *testing.T) {
	dir := t.TempDir()
	persons := filepath.Join(dir, "persons.csv")
	contacts := filepath.Join(dir, "contacts.csv")
	out := filepath.Join(dir, "out", "roster.xlsx")
	require.NoError(t, os.WriteFile(persons, []byte("ID_NUMBER,BIRTH_DATE,GENDER,BIRTH_PLACE,BIRTH_COUNTRY\n42,40544,f,porto,portugal\n"), 0o600))
	require.NoError(t, os.WriteFile(contacts, []byte(
		"IDENTIFIER,PERSON_NAME,PERSON_ADDRESS,PARENT1_NAME,PARENT1_ADDRESS,PARENT1_EMAIL,PARENT1_PHONE,PARENT2_NAME,PARENT2_ADDRESS,PARENT2_EMAIL,PARENT2_PHONE\n"+
			"42,\"Silva, Ana\",rua a-1-b-porto-4000,Rui Silva,,,,,,,\n"), 0o600))

	app, stdout, stderr := newTestApp(t, WithRunID("run-e2e"))
	err := app.Execute(context.Background(), []string{
		"merge",
		"--persons", persons,
		"--contacts", contacts,
		"--output", out,
		"--identifier-width", "9",
		"-o", "json",
	})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), `"run_id": "run-e2e"`)
	assert.Contains(t, stderr.String(), "assembled 1 records")
	assert.Equal(t, 9, app.Config().IdentifierWidth)

	tbl, err := sheets.Read(context.Background(), out, sheets.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "000000042", tbl.Cell(0, "ID_NUMBER").Value())
	assert.Equal(t, "01/01/2011", tbl.Cell(0, "BIRTH_DATE").Value())
	assert.Equal(t, "LEGAL", tbl.Cell(0, "RESPONSIBLE1_ROLE").Value())
	assert.False(t, tbl.Cell(0, "RESPONSIBLE2_ROLE").Present())
}

const contactsHeader = "IDENTIFIER,PERSON_NAME,PERSON_ADDRESS,PARENT1_NAME,PARENT1_ADDRESS,PARENT1_EMAIL,PARENT1_PHONE,PARENT2_NAME,PARENT2_ADDRESS,PARENT2_EMAIL,PARENT2_PHONE\n"

// writeInputs writes a persons and a contacts CSV with one contact per person.
func writeInputs(t *testing.T, personRows ...string) (persons, contacts string) {
	t.Helper()
	dir := t.TempDir()
	persons = filepath.Join(dir, "persons.csv")
	contacts = filepath.Join(dir, "contacts.csv")

	p := "ID_NUMBER,BIRTH_DATE,GENDER,BIRTH_PLACE,BIRTH_COUNTRY\n"
	c := contactsHeader
	for _, row := range personRows {
		p += row + "\n"
		id, _, _ := strings.Cut(row, ",")
		c += id + ",\"Silva, Ana\",rua a,Rui Silva,,,,,,,\n"
	}
	require.NoError(t, os.WriteFile(persons, []byte(p), 0o600))
	require.NoError(t, os.WriteFile(contacts, []byte(c), 0o600))
	return persons, contacts
}

func TestExecuteMergeDateLayout(t *testing.T) {
	persons, contacts := writeInputs(t,
		"1,2012-03-09,f,porto,portugal",
		"2,\"March 9, 2012\",f,porto,portugal",
		"3,09.03.2012,f,porto,portugal",
	)
	out := filepath.Join(t.TempDir(), "roster.csv")

	app, _, _ := newTestApp(t)
	err := app.Execute(context.Background(), []string{
		"merge",
		"--persons", persons,
		"--contacts", contacts,
		"--output", out,
		"--date-layout", "January 2, 2006",
		"-o", "json",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"January 2, 2006"}, app.Config().DateLayouts)

	tbl, err := sheets.Read(context.Background(), out, sheets.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())
	for i := range tbl.Len() {
		assert.Equal(t, "09/03/2012", tbl.Cell(i, "BIRTH_DATE").Value(), "row %d", i)
	}
}

func TestExecuteMergePreview(t *testing.T) {
	persons, contacts := writeInputs(t, "42,2012-03-09,f,porto,portugal")

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "unset", want: 0},
		{name: "with value", args: []string{"--preview=3"}, want: 3},
		{name: "without value", args: []string{"--preview"}, want: constants.DefaultPreviewRows},
		{name: "separate value is an argument", args: []string{"--preview", "3"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			args := append([]string{"merge", "--persons", persons, "--contacts", contacts, "--dry-run", "-o", "json"}, tt.args...)
			err := app.Execute(context.Background(), args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, app.Config().Preview)
		})
	}
}

func TestExecuteMergeSheetFlags(t *testing.T) {
	persons, contacts := writeInputs(t, "42,2012-03-09,f,porto,portugal")

	app, _, _ := newTestApp(t)
	err := app.Execute(context.Background(), []string{
		"merge",
		"--persons", persons,
		"--contacts", contacts,
		"--sheet", "Data",
		"--contacts-sheet", "Guardians",
		"--dry-run",
		"-o", "json",
	})
	require.NoError(t, err)
	assert.Equal(t, "Data", app.Config().PersonsSheetName())
	assert.Equal(t, "Guardians", app.Config().ContactsSheetName())
}

func TestExecuteMergeMissingInputs(t *testing.T) {
	t.Setenv("ROSTER_PERSONS", "")
	t.Setenv("ROSTER_CONTACTS", "")
	app, _, _ := newTestApp(t)
	err := app.Execute(context.Background(), []string{"merge", "--dry-run"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
