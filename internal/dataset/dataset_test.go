package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/job-notification-tracker/internal/schemas"
	"github.com/jonathan/job-notification-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_IsValid(t *testing.T) {
	jobs, err := Sample()
	require.NoError(t, err)
	assert.Len(t, jobs, 15)

	first := jobs[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Software Engineer", first.Title)
	assert.Equal(t, types.ModeHybrid, first.Mode)
	assert.Equal(t, "₹8-12 LPA", first.SalaryRange)
	assert.Equal(t, []string{"Java", "Spring Boot", "SQL"}, first.Skills)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	content := `[{"id": 7, "title": "SRE", "company": "Acme", "mode": "Remote", "experience": "3-5",
		"source": "Indeed", "postedDaysAgo": 2, "skills": ["Go"]}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	jobs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 7, jobs[0].ID)
	assert.Equal(t, types.SourceIndeed, jobs[0].Source)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	content := `
- id: 3
  title: Data Engineer
  company: Acme
  location: Pune
  mode: Hybrid
  experience: 1-3
  source: LinkedIn
  salaryRange: "₹10-15 LPA"
  postedDaysAgo: 0
  skills: [Spark, SQL]
  applyUrl: https://example.com/3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	jobs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Data Engineer", jobs[0].Title)
	assert.Equal(t, types.ExperienceOneToThree, jobs[0].Experience)
	assert.Equal(t, []string{"Spark", "SQL"}, jobs[0].Skills)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParseJSON_SchemaViolation(t *testing.T) {
	_, err := ParseJSON("test", []byte(`[{"id": 1, "title": "x"}]`))
	var mismatch *schemas.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestParseJSON_DuplicateIDs(t *testing.T) {
	doc := `[
		{"id": 1, "title": "A", "company": "X", "mode": "Remote", "experience": "0-1", "source": "Naukri", "postedDaysAgo": 0},
		{"id": 1, "title": "B", "company": "Y", "mode": "Remote", "experience": "0-1", "source": "Naukri", "postedDaysAgo": 0}
	]`
	_, err := ParseJSON("test", []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate job id 1")
}

func TestParseYAML_InvalidJob(t *testing.T) {
	doc := `
- id: 1
  title: A
  company: X
  mode: Office
  experience: 0-1
  source: Naukri
`
	_, err := ParseYAML("test", []byte(doc))
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, err.Error(), "index 0")
}

func TestParseYAML_Malformed(t *testing.T) {
	_, err := ParseYAML("test", []byte("- id: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode YAML")
}
