package synthesizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/videos"
	"github.com/scripturecast/scripture-backend/pkg/logger"
)

// MaxScriptChars caps the synthesized prompt sent to the video producer.
const MaxScriptChars = 500

const systemPrompt = "You are a biblical scholar and cinematographer who creates accurate, reverent video scripts from scripture."

type openAISynthesizer struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

func NewOpenAISynthesizer(cfg *config.Config, log logger.Logger) videos.Synthesizer {
	s := &openAISynthesizer{
		model:  cfg.OpenAI.ScriptModel,
		logger: log,
	}
	if cfg.OpenAI.APIKey == "" {
		log.Warn("openai API key not configured, script synthesis disabled")
		return s
	}
	s.client = openai.NewClient(cfg.OpenAI.APIKey)
	return s
}

func (s *openAISynthesizer) Synthesize(ctx context.Context, bookName string, chapter int, chapterText string) (string, error) {
	if s.client == nil {
		return "", errors.New("openai API key not configured")
	}
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildScriptPrompt(bookName, chapter, chapterText),
			},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", errors.Wrap(err, "openai: failed to generate script")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty completion response")
	}
	script := CapScript(strings.TrimSpace(resp.Choices[0].Message.Content))
	if script == "" {
		return "", errors.New("openai: completion returned an empty script")
	}
	return script, nil
}

// BuildScriptPrompt assembles the scene-by-scene instruction around the raw
// chapter text. The requirements mirror what the video model responds to:
// concrete physical details from the source, 3-5 beats, reverent tone.
func BuildScriptPrompt(bookName string, chapter int, chapterText string) string {
	return fmt.Sprintf(`Create a detailed, scene-by-scene video script for %s Chapter %d.

Chapter text:
%s

IMPORTANT REQUIREMENTS:
1. Be 100%% accurate to the biblical text - every detail must match exactly
2. Break the narrative into 3-5 clear, visual scenes
3. Each scene should be 5-10 seconds and highly cinematic
4. Use specific visual details from the text (e.g., "stone hits Goliath's forehead" not "stone hits Goliath")
5. Include camera angles, lighting, and mood for each scene
6. Keep it reverent and historically appropriate
7. Format as a single paragraph prompt optimized for video generation AI

Generate a cinematic video prompt (max %d characters) that captures the essence of this chapter with biblical accuracy.`,
		bookName, chapter, chapterText, MaxScriptChars)
}

// CapScript enforces the hard length ceiling, cutting at the last word
// boundary that fits.
func CapScript(script string) string {
	runes := []rune(script)
	if len(runes) <= MaxScriptChars {
		return script
	}
	capped := string(runes[:MaxScriptChars])
	if idx := strings.LastIndexByte(capped, ' '); idx > 0 {
		capped = capped[:idx]
	}
	return capped
}
