package llm

import (
	"context"
	"time"

	"Reelgen/config"
	"Reelgen/pkg/log"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// Client 单个 OpenAI 兼容端点的模型目录客户端
type Client struct {
	name   string
	client openai.Client
}

func NewClient(ep config.LLMEndpoint) *Client {
	return &Client{
		name: ep.Name,
		client: openai.NewClient(
			option.WithAPIKey(ep.APIKey),
			option.WithBaseURL(ep.BaseURL),
		),
	}
}

func (c *Client) Name() string {
	return c.name
}

// ListModels 拉取端点的可用模型 ID 列表
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	startTime := time.Now()

	page, err := c.client.Models.List(ctx)
	if err != nil {
		log.L.Error("failed to list models", zap.String("endpoint", c.name), zap.Error(err))
		return nil, err
	}

	var ids []string
	for page != nil {
		for _, m := range page.Data {
			ids = append(ids, m.ID)
		}
		page, err = page.GetNextPage()
		if err != nil {
			return nil, err
		}
	}

	log.L.Info("list models",
		zap.String("endpoint", c.name),
		zap.Int("count", len(ids)),
		zap.Duration("cost", time.Since(startTime)),
	)
	return ids, nil
}

// NewClients 按配置建一组端点客户端
func NewClients(cfg *config.LLMConfig) []*Client {
	if cfg == nil {
		return nil
	}
	clients := make([]*Client, 0, len(cfg.Endpoints))
	for _, ep := range cfg.Endpoints {
		clients = append(clients, NewClient(ep))
	}
	return clients
}
