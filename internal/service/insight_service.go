package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"readflow_backend/internal/config"
	"readflow_backend/internal/model"
	"readflow_backend/pkg/monitoring"
)

const (
	passageCachePrefix = "readflow:passage:"
	insightCachePrefix = "readflow:insights:"
	gatewayCacheTTL    = 10 * time.Minute
	recentSessionN     = 10
)

// fallbackPassageContent is served whenever the gateway cannot produce a
// passage, so a speed test is always possible offline.
const fallbackPassageContent = "Reading is a complex cognitive process of decoding symbols in order to construct or derive meaning. Reading is a means of language acquisition, communication, and of sharing information and ideas. Like all languages, it is a complex interaction between the text and the reader which is shaped by the reader's prior knowledge, experiences, attitude."

// SessionLister exposes the recent session log to the gateway.
type SessionLister interface {
	RecentSessions(n int) []model.ReadingSession
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// InsightService calls an OpenAI-compatible chat completions endpoint to
// generate reading passages and insights. Every public method degrades to a
// fixed fallback instead of returning an error, so the reading flow never
// blocks on the gateway.
type InsightService struct {
	mu       sync.RWMutex
	cfg      config.AIConfig
	log      *zap.Logger
	client   *http.Client
	rdb      *redis.Client
	sessions SessionLister
}

func NewInsightService(cfg config.AIConfig, sessions SessionLister, rdb *redis.Client, log *zap.Logger) *InsightService {
	if log == nil {
		log = zap.NewNop()
	}
	return &InsightService{
		cfg:      cfg,
		log:      log,
		client:   &http.Client{Timeout: 30 * time.Second},
		rdb:      rdb,
		sessions: sessions,
	}
}

// UpdateConfig swaps the gateway settings on a config reload.
func (s *InsightService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	s.log.Info("AI gateway config updated", zap.String("base_url", cfg.BaseURL), zap.String("model", cfg.Model))
}

func (s *InsightService) config() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// chat posts a single-turn completion and returns the assistant message.
func (s *InsightService) chat(ctx context.Context, system, prompt string) (string, error) {
	cfg := s.config()
	if cfg.BaseURL == "" {
		return "", errors.New("AI gateway not configured")
	}

	reqBody := chatCompletionRequest{
		Model: cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	if chatResp.Error != nil {
		return "", errors.New(chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", errors.New("no response from AI")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// stripCodeFence tolerates models that wrap JSON in a markdown fence.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}

func fallbackPassage() model.ReadingPassage {
	return model.ReadingPassage{
		Title:      "The Art of Reading (Fallback)",
		Content:    fallbackPassageContent,
		WordCount:  len(strings.Fields(fallbackPassageContent)),
		Difficulty: model.DifficultyMedium,
	}
}

// GeneratePassage asks the gateway for a 200-300 word passage about the
// topic. Any failure yields the fallback passage.
func (s *InsightService) GeneratePassage(ctx context.Context, topic string) model.ReadingPassage {
	cacheKey := passageCacheKey(topic)
	var cached model.ReadingPassage
	if s.cacheGet(ctx, cacheKey, &cached) && cached.Content != "" {
		return cached
	}

	system := `You are a speed reading coach. Respond with a single JSON object only, no markdown, matching {"title": string, "content": string, "wordCount": integer, "difficulty": "Easy"|"Medium"|"Hard"}.`
	prompt := fmt.Sprintf("Generate a reading passage about %q for a speed reading test. It should be approximately 200-300 words long.", topic)

	text, err := s.chat(ctx, system, prompt)
	if err != nil {
		s.log.Warn("passage generation failed, serving fallback", zap.Error(err))
		monitoring.GatewayFallbacks.Inc()
		return fallbackPassage()
	}

	var passage model.ReadingPassage
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &passage); err != nil || passage.Content == "" {
		s.log.Warn("passage response unparseable, serving fallback", zap.Error(err))
		monitoring.GatewayFallbacks.Inc()
		return fallbackPassage()
	}
	if passage.WordCount <= 0 {
		passage.WordCount = len(strings.Fields(passage.Content))
	}
	switch passage.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		passage.Difficulty = model.DifficultyMedium
	}

	// fallbacks are never cached, only real gateway output
	s.cacheSet(ctx, cacheKey, passage)
	return passage
}

// GenerateInsights summarizes the latest sessions for the model and returns
// its tips. An empty log returns a single encouragement; gateway failures
// return two fixed tips.
func (s *InsightService) GenerateInsights(ctx context.Context) []model.ReadingInsight {
	recent := s.sessions.RecentSessions(recentSessionN)
	if len(recent) == 0 {
		return []model.ReadingInsight{{
			Message: "Complete your first reading session to unlock AI-powered insights!",
			Type:    model.InsightEncouragement,
		}}
	}

	cacheKey := insightsCacheKey(recent)
	var cached []model.ReadingInsight
	if s.cacheGet(ctx, cacheKey, &cached) && len(cached) > 0 {
		return cached
	}

	lines := make([]string, 0, len(recent))
	for _, sess := range recent {
		lines = append(lines, fmt.Sprintf("Date: %s, WPM: %d, Duration: %ds, Type: %s",
			sess.Date, sess.WPM, sess.DurationSeconds, sess.Type))
	}

	system := `You are a reading coach. Respond with a JSON array only, no markdown, of objects matching {"message": string, "type": "encouragement"|"analysis"|"tip"}.`
	prompt := fmt.Sprintf("Analyze these reading sessions and provide 3 brief insights/tips.\nSessions:\n%s\n\nReturn a list of insights.", strings.Join(lines, "\n"))

	text, err := s.chat(ctx, system, prompt)
	if err != nil {
		s.log.Warn("insight generation failed, serving fallback", zap.Error(err))
		monitoring.GatewayFallbacks.Inc()
		return fallbackInsights()
	}

	var insights []model.ReadingInsight
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &insights); err != nil || len(insights) == 0 {
		s.log.Warn("insight response unparseable, serving fallback", zap.Error(err))
		monitoring.GatewayFallbacks.Inc()
		return fallbackInsights()
	}
	for i := range insights {
		switch insights[i].Type {
		case model.InsightEncouragement, model.InsightAnalysis, model.InsightTip:
		default:
			insights[i].Type = model.InsightTip
		}
	}

	s.cacheSet(ctx, cacheKey, insights)
	return insights
}

func fallbackInsights() []model.ReadingInsight {
	return []model.ReadingInsight{
		{Message: "Consistent practice is key to improving reading speed.", Type: model.InsightTip},
		{Message: "Try to reduce subvocalization to read faster.", Type: model.InsightTip},
	}
}

// passageCacheKey normalizes the topic so casing and stray whitespace land
// on the same entry.
func passageCacheKey(topic string) string {
	return passageCachePrefix + strings.ToLower(strings.Join(strings.Fields(topic), " "))
}

// insightsCacheKey fingerprints the summarized sessions; any change to the
// log window misses the previous entry instead of serving stale tips.
func insightsCacheKey(sessions []model.ReadingSession) string {
	h := fnv.New64a()
	for _, sess := range sessions {
		fmt.Fprintf(h, "%s|%s|%s|%d|%d;", sess.ID, sess.Date, sess.Type, sess.WPM, sess.DurationSeconds)
	}
	return fmt.Sprintf("%s%d:%x", insightCachePrefix, len(sessions), h.Sum64())
}

func (s *InsightService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.rdb == nil {
		return false
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Debug("gateway cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (s *InsightService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, gatewayCacheTTL).Err(); err != nil {
		s.log.Debug("gateway cache write failed", zap.String("key", key), zap.Error(err))
	}
}
