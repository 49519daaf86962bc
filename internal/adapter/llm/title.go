package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tradescribe/backend/internal/domain"
)

const titlePromptHeader = `Generate a very short title (at most 5 words) for a trading journal conversation that starts with the messages below. Output ONLY the title, no quotes, no punctuation at the end.

`

// GenerateTitle produces a short display title from the first messages of
// a chat. Returns an error on failure or empty output; callers must then
// keep the existing title.
func (c *Client) GenerateTitle(ctx context.Context, messages []*domain.Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages to title")
	}
	if c.titleMessages > 0 && len(messages) > c.titleMessages {
		messages = messages[:c.titleMessages]
	}

	var b strings.Builder
	b.WriteString(titlePromptHeader)
	for _, m := range messages {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}

	response, err := c.complete(ctx, b.String())
	if err != nil {
		return "", err
	}

	title := strings.Trim(strings.TrimSpace(response), `"'`)
	if title == "" {
		return "", fmt.Errorf("model returned an empty title")
	}

	return title, nil
}
