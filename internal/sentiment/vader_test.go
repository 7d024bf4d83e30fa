package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "this serum", RemoveLinks("[this serum](https://example.com/serum)"))
	assert.Equal(t, "check out ", RemoveLinks("check out https://example.com/post"))
	assert.Equal(t, "no links here", RemoveLinks("no links here"))
}

func TestScoreTextLabels(t *testing.T) {
	score, label := ScoreText("I absolutely love this, it works wonderfully!")
	assert.Greater(t, score, 0.20)
	assert.Equal(t, "positive", label)

	score, label = ScoreText("This was terrible and a complete waste of money.")
	assert.Less(t, score, -0.20)
	assert.Equal(t, "negative", label)

	_, label = ScoreText("")
	assert.Equal(t, "neutral", label)
}

func TestScoreTextIgnoresMarkdown(t *testing.T) {
	plain, _ := ScoreText("great product")
	markdown, _ := ScoreText("**great** product")
	assert.InDelta(t, plain, markdown, 0.0001)
}
