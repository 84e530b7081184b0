package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/zeromicro/go-zero/core/logx"
)

// PlaceholderImageURL is substituted whenever image generation fails; a
// cake request never fails because the preview could not be rendered.
const PlaceholderImageURL = "https://via.placeholder.com/1024x1024/FFB6C1/000000?text=Torta+Personalizada"

// ImageGenerator renders a cake preview for a design prompt and returns
// its URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// DalleGenerator produces cake previews through the OpenAI images API.
type DalleGenerator struct {
	log    logx.Logger
	client *openai.Client
	model  string
	size   string
}

func NewDalleGenerator(logger logx.Logger, apiKey, baseURL, model, size string) (*DalleGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("image api key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.CreateImageModelDallE3
	}
	if size == "" {
		size = openai.CreateImageSize1024x1024
	}
	return &DalleGenerator{
		log:    logger,
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		size:   size,
	}, nil
}

func (g *DalleGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", fmt.Errorf("image generator unavailable")
	}

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:  OptimizeCakeImagePrompt(prompt),
		Model:   g.model,
		N:       1,
		Size:    g.size,
		Quality: openai.CreateImageQualityStandard,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("image response carried no url")
	}
	return resp.Data[0].URL, nil
}

// OptimizeCakeImagePrompt decorates the raw request with photography cues
// the image model responds well to.
func OptimizeCakeImagePrompt(userPrompt string) string {
	prompt := "Professional high-quality cake photography, detailed and realistic cake design, " + userPrompt

	lower := strings.ToLower(userPrompt)
	if !strings.Contains(lower, "background") {
		prompt += ", clean white background"
	}
	if !strings.Contains(lower, "lighting") {
		prompt += ", professional studio lighting"
	}
	if !strings.Contains(lower, "realistic") {
		prompt += ", photorealistic"
	}

	return prompt + ", no text, no writing, high resolution, detailed"
}
