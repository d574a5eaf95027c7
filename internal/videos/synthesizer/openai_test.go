package synthesizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildScriptPrompt(t *testing.T) {
	prompt := BuildScriptPrompt("Psalms", 23, "The LORD is my shepherd; I shall not want.")

	assert.Contains(t, prompt, "Psalms Chapter 23")
	assert.Contains(t, prompt, "The LORD is my shepherd")
	assert.Contains(t, prompt, "100% accurate")
	assert.Contains(t, prompt, "max 500 characters")
}

func TestCapScript_ShortScriptUntouched(t *testing.T) {
	script := "A shepherd leads his flock through green pastures."
	assert.Equal(t, script, CapScript(script))
}

func TestCapScript_CutsAtWordBoundary(t *testing.T) {
	long := strings.Repeat("shepherd pasture ", 60)
	capped := CapScript(long)

	assert.LessOrEqual(t, len([]rune(capped)), MaxScriptChars)
	assert.False(t, strings.HasSuffix(capped, " "))
	// No word is split in half.
	assert.True(t, strings.HasSuffix(capped, "shepherd") || strings.HasSuffix(capped, "pasture"))
}

func TestCapScript_MultibyteSafe(t *testing.T) {
	long := strings.Repeat("воды тихие ", 80)
	capped := CapScript(long)

	assert.LessOrEqual(t, len([]rune(capped)), MaxScriptChars)
	assert.True(t, strings.HasPrefix(long, capped))
}
