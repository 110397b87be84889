package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"definex/domain"
)

func sampleResult() *domain.DefinitionResult {
	return &domain.DefinitionResult{
		Word:          "run",
		PartsOfSpeech: []string{"verb", "noun"},
		Definitions: []domain.DefinitionBlock{
			{
				PartOfSpeech: "verb",
				Text:         "to move fast on foot",
				Examples: []domain.Example{
					{Text: "She runs daily."},
					{Text: "He ran home."},
					{Text: "They run together."},
				},
			},
			{
				PartOfSpeech: "noun",
				Text:         "an act of running",
				Examples:     []domain.Example{{Text: "A morning run."}},
			},
		},
	}
}

func TestProjectRelevantScopeKeepsFirstBlock(t *testing.T) {
	projected := Project(sampleResult(), domain.ScopeRelevant, 1)

	require.Len(t, projected.Definitions, 1)
	assert.Equal(t, "to move fast on foot", projected.Definitions[0].Text)
	require.Len(t, projected.Definitions[0].Examples, 1)
	assert.Equal(t, "She runs daily.", projected.Definitions[0].Examples[0].Text)
}

func TestProjectAllScopeKeepsEveryBlock(t *testing.T) {
	projected := Project(sampleResult(), domain.ScopeAll, 2)

	require.Len(t, projected.Definitions, 2)
	assert.Len(t, projected.Definitions[0].Examples, 2)
	assert.Len(t, projected.Definitions[1].Examples, 1, "shorter example lists untouched")
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	original := sampleResult()
	_ = Project(original, domain.ScopeRelevant, 1)

	require.Len(t, original.Definitions, 2)
	assert.Len(t, original.Definitions[0].Examples, 3)
}

func TestProjectIsIdempotent(t *testing.T) {
	once := Project(sampleResult(), domain.ScopeRelevant, 1)
	twice := Project(once, domain.ScopeRelevant, 1)
	assert.Equal(t, once, twice)
}

func TestProjectZeroExampleCount(t *testing.T) {
	projected := Project(sampleResult(), domain.ScopeAll, 0)
	assert.Empty(t, projected.Definitions[0].Examples)
	assert.Empty(t, projected.Definitions[1].Examples)
}

func TestProjectNegativeExampleCount(t *testing.T) {
	projected := Project(sampleResult(), domain.ScopeAll, -1)
	require.Len(t, projected.Definitions, 2)
	assert.Empty(t, projected.Definitions[0].Examples)
	assert.Empty(t, projected.Definitions[1].Examples)
}

func TestProjectNil(t *testing.T) {
	assert.Nil(t, Project(nil, domain.ScopeRelevant, 1))
}
