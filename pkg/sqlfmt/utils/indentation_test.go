package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndentation_TopLevelPushPop(t *testing.T) {
	ind := NewIndentation("  ")
	assert.Equal(t, "", ind.GetIndent())

	ind.IncreaseTopLevel()
	assert.Equal(t, "  ", ind.GetIndent())
	assert.Equal(t, 1, ind.Depth())

	ind.IncreaseTopLevel()
	assert.Equal(t, "    ", ind.GetIndent())

	ind.DecreaseTopLevel()
	assert.Equal(t, "  ", ind.GetIndent())
}

func TestIndentation_DecreaseTopLevelIsNoOpOnBlockFrame(t *testing.T) {
	ind := NewIndentation("  ")
	ind.IncreaseBlockLevel()

	ind.DecreaseTopLevel()

	assert.Equal(t, 1, ind.Depth(), "a top-level pop must not unwind a block frame")
}

func TestIndentation_DecreaseBlockLevelDiscardsNestedTopLevelFirst(t *testing.T) {
	ind := NewIndentation("  ")
	ind.IncreaseBlockLevel()
	ind.IncreaseTopLevel()
	ind.IncreaseTopLevel()

	ind.DecreaseBlockLevel()

	assert.Equal(t, 0, ind.Depth())
}

func TestIndentation_ResetIndentationEmptiesStack(t *testing.T) {
	ind := NewIndentation("  ")
	ind.IncreaseTopLevel()
	ind.IncreaseBlockLevel()

	ind.ResetIndentation()

	assert.Equal(t, 0, ind.Depth())
	assert.Equal(t, "", ind.GetIndent())
}

func TestIndentation_SetIndentUnitChangesWidth(t *testing.T) {
	ind := NewIndentation("  ")
	ind.IncreaseTopLevel()

	ind.SetIndentUnit("          ")

	assert.Equal(t, "          ", ind.GetIndent())
}
