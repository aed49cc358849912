package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lojaviva/varejo-api/internal/application/dto"
	"github.com/lojaviva/varejo-api/internal/application/sales"
	"github.com/lojaviva/varejo-api/pkg/config"
)

const (
	customerSalesKeyPrefix = "customer:sales:"
	defaultCustomerViewTTL = time.Minute
)

var _ sales.CustomerViewCache = (*redisCustomerViewCache)(nil)
var _ sales.CustomerViewCache = (*noopCustomerViewCache)(nil)

type redisCustomerViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopCustomerViewCache struct{}

// NewCustomerViewCache constrói o cache read-through da visão de vendas por
// cliente. Com Enabled=false devolve a implementação noop (sempre miss).
func NewCustomerViewCache(cfg config.CacheConfig) (sales.CustomerViewCache, error) {
	if !cfg.Enabled {
		return &noopCustomerViewCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultCustomerViewTTL
	}

	return &redisCustomerViewCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// NewNoopCustomerViewCache devolve um cache que nunca acerta (para testes e
// ambientes sem Redis).
func NewNoopCustomerViewCache() sales.CustomerViewCache {
	return &noopCustomerViewCache{}
}

func (c *redisCustomerViewCache) Get(ctx context.Context, customerID string) (*dto.CustomerSalesResponse, bool, error) {
	payload, err := c.client.Get(ctx, customerSalesKeyPrefix+customerID).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var view dto.CustomerSalesResponse
	if err := json.Unmarshal(payload, &view); err != nil {
		return nil, false, fmt.Errorf("decode customer sales cache: %w", err)
	}

	return &view, true, nil
}

func (c *redisCustomerViewCache) Set(ctx context.Context, customerID string, view *dto.CustomerSalesResponse) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encode customer sales cache: %w", err)
	}

	if err := c.client.Set(ctx, customerSalesKeyPrefix+customerID, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisCustomerViewCache) Invalidate(ctx context.Context, customerID string) error {
	if err := c.client.Del(ctx, customerSalesKeyPrefix+customerID).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (n *noopCustomerViewCache) Get(ctx context.Context, customerID string) (*dto.CustomerSalesResponse, bool, error) {
	return nil, false, nil
}

func (n *noopCustomerViewCache) Set(ctx context.Context, customerID string, view *dto.CustomerSalesResponse) error {
	return nil
}

func (n *noopCustomerViewCache) Invalidate(ctx context.Context, customerID string) error {
	return nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}
