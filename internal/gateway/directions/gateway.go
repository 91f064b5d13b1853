package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"service/internal/entities"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "directions-api"

	drivingPath  = "/map-direction/v1/driving"
	optionTrafic = "trafast"

	headerKeyID  = "x-ncp-apigw-api-key-id"
	headerKey    = "x-ncp-apigw-api-key"
	responseCode = 0
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// DirectionsGateway ходит в внешний API маршрутизации за быстрейшим
// маршрутом. Ответ сводится к дистанции и длительности, остальное выбрасывается.
type DirectionsGateway struct {
	config  Config
	client  httpClient
	retrier retrier
}

func New(config Config, client httpClient) *DirectionsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &DirectionsGateway{
		config:  config,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

type drivingResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Route   struct {
		Trafast []struct {
			Summary struct {
				Distance int64 `json:"distance"`
				Duration int64 `json:"duration"`
			} `json:"summary"`
		} `json:"trafast"`
	} `json:"route"`
}

// Route возвращает сводку быстрейшего маршрута от start до goal через
// waypoints в порядке следования. Дистанция в метрах, длительность в
// миллисекундах, как их отдает провайдер.
func (g *DirectionsGateway) Route(ctx context.Context, start, goal entities.GeoPoint, waypoints []entities.GeoPoint) (*entities.RouteSummary, error) {
	requestURL, err := g.buildURL(start, goal, waypoints)
	if err != nil {
		return nil, fmt.Errorf("gateway directions, build url: %w", err)
	}

	var parsed drivingResponse

	err = g.executeWithMetrics(ctx, "Driving", func(ctx context.Context) error {
		return g.doRequest(ctx, requestURL, &parsed)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway directions, driving: %w", err)
	}

	if parsed.Code != responseCode || len(parsed.Route.Trafast) == 0 {
		return nil, fmt.Errorf("gateway directions, no route in response (code %d): %w", parsed.Code, ErrUnavailable)
	}

	summary := parsed.Route.Trafast[0].Summary
	return &entities.RouteSummary{
		DistanceMeters: summary.Distance,
		DurationMs:     summary.Duration,
	}, nil
}

func (g *DirectionsGateway) buildURL(start, goal entities.GeoPoint, waypoints []entities.GeoPoint) (string, error) {
	base, err := url.Parse(g.config.BaseURL)
	if err != nil {
		return "", err
	}
	base.Path = strings.TrimSuffix(base.Path, "/") + drivingPath

	query := base.Query()
	query.Set("start", formatPoint(start))
	query.Set("goal", formatPoint(goal))
	query.Set("option", optionTrafic)
	if len(waypoints) > 0 {
		formatted := make([]string, 0, len(waypoints))
		for _, waypoint := range waypoints {
			formatted = append(formatted, formatPoint(waypoint))
		}
		query.Set("waypoints", strings.Join(formatted, "|"))
	}
	base.RawQuery = query.Encode()

	return base.String(), nil
}

func (g *DirectionsGateway) doRequest(ctx context.Context, requestURL string, out *drivingResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(headerKeyID, g.config.ClientID)
	req.Header.Set(headerKey, g.config.ClientSecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &httpStatusError{status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %v: %w", err, ErrUnavailable)
	}
	return nil
}

// httpStatusError сохраняет статус для решения о ретрае.
type httpStatusError struct {
	status int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %v", e.status, ErrUnavailable)
}

func (e *httpStatusError) Unwrap() error {
	return ErrUnavailable
}

func isRetryableStatus(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.status == http.StatusTooManyRequests || statusErr.status >= http.StatusInternalServerError
	}
	return false
}

func (g *DirectionsGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return strconv.Itoa(http.StatusOK)
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.status)
	}
	return "transport"
}

func formatPoint(point entities.GeoPoint) string {
	return strconv.FormatFloat(point.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(point.Lat, 'f', -1, 64)
}
