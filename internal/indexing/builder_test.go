package indexing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicstalent-sudo/level-up-backend/config"
	"github.com/epicstalent-sudo/level-up-backend/model"
	"github.com/epicstalent-sudo/level-up-backend/store"
)

func newTestStore(t *testing.T) *store.CandidateStore {
	t.Helper()
	s, err := store.New([]model.Candidate{
		{
			ID:          model.NumericCandidateID(1),
			Headline:    "Java backend developer",
			Skills:      []string{"Java", "SQL", "Spring Boot"},
			CurrentRole: "Senior Engineer",
			Location:    "Chennai",
		},
		{
			ID:          model.NewCandidateID("two"),
			Headline:    "Python data engineer and Python trainer",
			Skills:      []string{"Python"},
			CurrentRole: "Data Engineer",
			Location:    "Bangalore",
		},
	})
	require.NoError(t, err)
	return s
}

func TestBuild_IndexesThreeFields(t *testing.T) {
	ii, err := Build(newTestStore(t), config.DefaultIndexSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "two"}, ii.Refs)

	java := ii.Postings("java")
	require.Len(t, java, 2)
	assert.Equal(t, uint32(0), java[0].DocID)
	assert.Equal(t, "headline", java[0].FieldName)
	assert.Equal(t, "skills", java[1].FieldName)

	spring := ii.Postings("spring")
	require.Len(t, spring, 1)
	assert.Equal(t, "skills", spring[0].FieldName)
	assert.Equal(t, 1.0, spring[0].Score)

	// location is not searchable by default
	assert.Nil(t, ii.Postings("chennai"))
}

func TestBuild_TermFrequency(t *testing.T) {
	ii, err := Build(newTestStore(t), config.DefaultIndexSettings())
	require.NoError(t, err)

	python := ii.Postings("python")
	require.Len(t, python, 2)
	assert.Equal(t, "headline", python[0].FieldName)
	assert.Equal(t, 2.0, python[0].Score)
	assert.Equal(t, "skills", python[1].FieldName)
}

func TestBuild_FieldLengthsSkipStopWords(t *testing.T) {
	ii, err := Build(newTestStore(t), config.DefaultIndexSettings())
	require.NoError(t, err)

	// "and" is a stop word
	assert.Equal(t, []int{3, 5}, ii.FieldLengths["headline"])
	assert.Equal(t, []int{4, 1}, ii.FieldLengths["skills"])
	assert.Equal(t, 2.5, ii.AvgFieldLength["skills"])
	assert.Nil(t, ii.Postings("and"))
}

func TestBuild_StemmedTerms(t *testing.T) {
	ii, err := Build(newTestStore(t), config.DefaultIndexSettings())
	require.NoError(t, err)

	assert.NotNil(t, ii.Postings("develop"), "developer should be stemmed")
	assert.Nil(t, ii.Postings("developer"))
}

func TestBuild_WithoutPipeline(t *testing.T) {
	settings := config.IndexSettings{
		SearchableFields: []string{"headline", "location"},
	}
	ii, err := Build(newTestStore(t), settings)
	require.NoError(t, err)

	assert.NotNil(t, ii.Postings("developer"))
	assert.NotNil(t, ii.Postings("and"))
	assert.NotNil(t, ii.Postings("chennai"))
	assert.Nil(t, ii.Postings("sql"))
}

func TestBuild_InvalidSettings(t *testing.T) {
	_, err := Build(newTestStore(t), config.IndexSettings{SearchableFields: []string{"salary"}})
	assert.Error(t, err)

	_, err = Build(nil, config.DefaultIndexSettings())
	assert.Error(t, err)
}

func TestFieldText(t *testing.T) {
	c := model.Candidate{Headline: "h", Skills: []string{"Go", "gRPC"}, CurrentRole: "r", Location: "l"}

	assert.Equal(t, "h", FieldText(c, "headline"))
	assert.Equal(t, "Go gRPC", FieldText(c, "skills"))
	assert.Equal(t, "r", FieldText(c, "currentRole"))
	assert.Equal(t, "l", FieldText(c, "location"))
	assert.Equal(t, "", FieldText(c, "unknown"))
}
