package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/models"
)

const (
	defaultGarminBaseURL = "https://connectapi.garmin.com"
	defaultTimeout       = 15 * time.Second

	loginPath       = "/oauth-service/oauth/exchange"
	heartRatePath   = "/wellness-service/wellness/dailyHeartRate"
	respirationPath = "/wellness-service/wellness/daily/respiration/"
)

type garminAdapter struct {
	client   *resty.Client
	email    string
	password string
	log      *logger.Logger

	mu    sync.RWMutex
	token string
}

// garminTokenResponse is the OAuth exchange response body.
type garminTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// NewGarminAdapter builds a Garmin Connect client from the configured
// credentials. The returned adapter is unauthenticated until Login is
// called.
func NewGarminAdapter(cfg config.Garmin, httpCfg config.HTTP, log *logger.Logger) FitnessAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGarminBaseURL
	}
	timeout := httpCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &garminAdapter{client: cli, email: cfg.Email, password: cfg.Password, log: log}
}

func (g *garminAdapter) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

func (g *garminAdapter) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// Login exchanges the account credentials for an OAuth access token and
// stores it for the data requests. Any failure here is fatal to the run;
// nothing downstream works without the session.
func (g *garminAdapter) Login(ctx context.Context) error {
	var tok garminTokenResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": g.email, "password": g.password}).
		SetResult(&tok).
		Post(loginPath)
	if err != nil {
		return fmt.Errorf("garmin login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("garmin login: %w", err)
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("garmin login: %w", ErrNoToken)
	}

	g.logTokenExpiry(tok.AccessToken)
	g.SetToken(tok.AccessToken)

	return nil
}

// logTokenExpiry reads the exp claim from the access token for the run's
// diagnostics. The token is a JWT issued by Garmin's OAuth service; its
// signature cannot be verified client-side, so the claims are parsed
// unverified and used for logging only.
func (g *garminAdapter) logTokenExpiry(token string) {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		g.log.Debug().Msg("garmin access token carries no readable expiry")
		return
	}

	g.log.Debug().Time("expires_at", claims.ExpiresAt.Time).Msg("garmin session established")
	if claims.ExpiresAt.Before(time.Now()) {
		g.log.Warn().Msg("garmin access token is already expired")
	}
}

func (g *garminAdapter) GetHeartRates(ctx context.Context, day string) (models.HeartRateSummary, error) {
	var summary models.HeartRateSummary

	resp, err := g.authedRequest(ctx).
		SetQueryParam("date", day).
		SetResult(&summary).
		Get(heartRatePath)
	if err != nil {
		return models.HeartRateSummary{}, fmt.Errorf("garmin heart rate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HeartRateSummary{}, fmt.Errorf("garmin heart rate: %w", err)
	}

	return summary, nil
}

func (g *garminAdapter) GetRespiration(ctx context.Context, day string) ([]models.RespirationSample, error) {
	var samples []models.RespirationSample

	resp, err := g.authedRequest(ctx).
		SetResult(&samples).
		Get(respirationPath + day)
	if err != nil {
		return nil, fmt.Errorf("garmin respiration request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("garmin respiration: %w", err)
	}

	return samples, nil
}

func (g *garminAdapter) authedRequest(ctx context.Context) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetAuthToken(g.Token())
}
