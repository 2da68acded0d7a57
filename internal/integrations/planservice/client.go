package planservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-SalonAdmin/internal/domain"
)

// Client клиент для работы с PlanService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PlanService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPlan получает тариф пользователя
func (c *Client) GetPlan(ctx context.Context, userID string) (domain.PlanTier, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s/plan", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", ErrUserNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var plan Plan
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	tier := domain.PlanTier(plan.Tier)
	if !tier.IsValid() {
		return "", fmt.Errorf("%w: unknown tier %q", ErrInvalidResponse, plan.Tier)
	}

	return tier, nil
}

// GetPlanWithGracefulDegradation получает тариф пользователя.
// Если PlanService недоступен или пользователь ему неизвестен, возвращает бесплатный тариф:
// платные функции будут закрыты, но основной сценарий продолжит работать
func (c *Client) GetPlanWithGracefulDegradation(ctx context.Context, userID string) domain.PlanTier {
	tier, err := c.GetPlan(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.log.Info("No plan found for user_id=%s, using %s", userID, domain.PlanFree)
			return domain.PlanFree
		}

		c.log.Error("PlanService unavailable, applying graceful degradation for user_id=%s: %v", userID, err)
		return domain.PlanFree
	}

	return tier
}
