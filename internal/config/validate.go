package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must exceed access_token_ttl")
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.CallTimeout <= 0 {
		return fmt.Errorf("llm.call_timeout must be positive (got %v)", c.LLM.CallTimeout)
	}

	if err := c.Chat.validate(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	return nil
}

func (c *ChatConfig) validate() error {
	if c.HistoryTurns <= 0 {
		return fmt.Errorf("history_turns must be positive (got %d)", c.HistoryTurns)
	}
	if c.ContextTrades <= 0 {
		return fmt.Errorf("context_trades must be positive (got %d)", c.ContextTrades)
	}
	if c.InsightTrades <= 0 {
		return fmt.Errorf("insight_trades must be positive (got %d)", c.InsightTrades)
	}
	if c.TitleMessages <= 0 {
		return fmt.Errorf("title_messages must be positive (got %d)", c.TitleMessages)
	}
	if c.MaxMessageLen <= 0 {
		return fmt.Errorf("max_message_len must be positive (got %d)", c.MaxMessageLen)
	}
	return nil
}
