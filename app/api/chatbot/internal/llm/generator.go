// Package llm wraps the external generative services the chatbot consumes:
// a chat model for natural-language answers and an image model for cake
// design previews. Both are reached through narrow interfaces so logic and
// tests never depend on a live model.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// TextGenerator produces a completion for a single prompt. Implementations
// must be safe for concurrent use.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator runs prompts through a compiled eino chain over the configured
// chat model.
type Generator struct {
	log      logx.Logger
	runnable compose.Runnable[string, string]
}

func NewGenerator(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*Generator, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	chain := compose.NewChain[string, string]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, prompt string) ([]*schema.Message, error) {
		if strings.TrimSpace(prompt) == "" {
			return nil, fmt.Errorf("empty prompt")
		}
		return []*schema.Message{schema.UserMessage(prompt)}, nil
	}))

	chain.AppendChatModel(chatModel)

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (string, error) {
		if msg == nil {
			return "", fmt.Errorf("empty message")
		}
		text := strings.TrimSpace(msg.Content)
		if text == "" {
			return "", fmt.Errorf("empty response")
		}
		return text, nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &Generator{log: logger, runnable: runnable}, nil
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.runnable == nil {
		return "", fmt.Errorf("text generator unavailable")
	}
	return g.runnable.Invoke(ctx, prompt)
}
