package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageRanksAreMonotonic(t *testing.T) {
	ordered := []Stage{StagePending, StageUploaded, StageAuthorized, StagePrinting, StageInstalling, StageMatched}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, StageRank(ordered[i]), StageRank(ordered[i-1]),
			"%s should rank above %s", ordered[i], ordered[i-1])
	}
}

func TestStageRankUnknown(t *testing.T) {
	assert.Equal(t, -1, StageRank(Stage("archived")))
}

func TestIsValidStage(t *testing.T) {
	assert.True(t, IsValidStage(StagePending))
	assert.True(t, IsValidStage(StageMatched))
	assert.False(t, IsValidStage(Stage("")))
	assert.False(t, IsValidStage(Stage("done")))
}

func TestValidateTransitionAllowsForwardEdges(t *testing.T) {
	edges := []struct {
		from Stage
		to   Stage
	}{
		{StagePending, StageUploaded},
		{StageUploaded, StageAuthorized},
		{StageAuthorized, StagePrinting},
		{StageAuthorized, StageInstalling},
		{StagePrinting, StageInstalling},
		{StageInstalling, StageMatched},
	}

	for _, edge := range edges {
		assert.NoError(t, ValidateTransition(edge.from, edge.to), "%s -> %s", edge.from, edge.to)
	}
}

func TestValidateTransitionRejectsBackwards(t *testing.T) {
	err := ValidateTransition(StageAuthorized, StageUploaded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backwards")
}

func TestValidateTransitionRejectsSelfLoop(t *testing.T) {
	err := ValidateTransition(StagePrinting, StagePrinting)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in stage")
}

func TestValidateTransitionRejectsUnknownStage(t *testing.T) {
	err := ValidateTransition(StagePending, Stage("shipped"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestValidateTransitionRejectsSkippedStages(t *testing.T) {
	// pending cannot jump straight to authorized
	assert.Error(t, ValidateTransition(StagePending, StageAuthorized))
	// uploaded cannot jump straight to matched
	assert.Error(t, ValidateTransition(StageUploaded, StageMatched))
	// printing cannot jump straight to matched
	assert.Error(t, ValidateTransition(StagePrinting, StageMatched))
}

func TestAuthorizedCanSkipPrinting(t *testing.T) {
	// install-only assets bypass the print queue
	assert.NoError(t, ValidateTransition(StageAuthorized, StageInstalling))
}

func TestMatchedIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StageMatched))
	assert.Empty(t, NextStages(StageMatched))

	for _, s := range []Stage{StagePending, StageUploaded, StageAuthorized, StagePrinting, StageInstalling} {
		assert.False(t, IsTerminal(s), "%s should not be terminal", s)
	}
}

func TestNextStages(t *testing.T) {
	assert.Equal(t, []Stage{StageUploaded}, NextStages(StagePending))
	assert.ElementsMatch(t, []Stage{StagePrinting, StageInstalling}, NextStages(StageAuthorized))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StagePending, StageUploaded))
	assert.False(t, CanTransition(StageUploaded, StagePending))
	assert.False(t, CanTransition(StageMatched, StagePending))
}
