package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const serviceVersion = "1.0.0"

// NewHealthHandler registers the dependency checks served on /health. Stripe
// is reported but never marks the service unavailable, since browsing and
// cash-on-delivery checkout work without it.
func NewHealthHandler(cfg *config.Config, stripeClient stripe.Client) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Telemetry.ServiceName,
			Version: serviceVersion,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:    "database",
				Timeout: 3 * time.Second,
				Check:   postgres.New(postgres.Config{DSN: cfg.Database.GetDSN()}),
			},
			health.Config{
				Name:    "redis",
				Timeout: 2 * time.Second,
				Check:   healthRedis.New(healthRedis.Config{DSN: cfg.RedisConnect.GetDSN()}),
			},
			health.Config{
				Name:      "stripe",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check:     StripeCheck(cfg.Stripe.APIKey, stripeClient),
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func StripeCheck(apiKey string, client stripe.Client) health.CheckFunc {
	return func(ctx context.Context) error {
		if apiKey == "" || client == nil {
			return errors.New("stripe is not configured")
		}

		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach stripe: %w", err)
		}

		return nil
	}
}
