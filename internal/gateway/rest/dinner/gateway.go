package dinner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dinner-service/internal/entities"
	retrierconfig "dinner-service/pkg/retrier"
	"dinner-service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "dinner-api"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const maxErrorBodySize = 64 << 10

// errTemporary помечает ошибки, которые имеет смысл повторить
var errTemporary = errors.New("temporary failure")

type DinnerGateway struct {
	baseURL  string
	client   httpClient
	retrier  retrier
	location *time.Location
}

// New location нужна для времени без зоны в ответах удалённого API
func New(baseURL string, client httpClient, location *time.Location) *DinnerGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     IsRetryable,
	}

	return NewWithRetrier(baseURL, client, location, backoff_adapter.New(retryConfig))
}

func NewWithRetrier(baseURL string, client httpClient, location *time.Location, r retrier) *DinnerGateway {
	if location == nil {
		location = time.UTC
	}
	return &DinnerGateway{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   client,
		retrier:  r,
		location: location,
	}
}

func (g *DinnerGateway) ListOrders(ctx context.Context, session entities.Session) ([]entities.Order, error) {
	var resp []orderDTO

	err := g.call(ctx, "ListOrders", request{
		method:     http.MethodGet,
		path:       "/orders",
		session:    session,
		idempotent: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, list orders: %w", err)
	}

	orders, err := toDomainOrders(resp, g.location)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, list orders: %w: %w", entities.ErrRemoteUnexpected, err)
	}
	return orders, nil
}

func (g *DinnerGateway) GetOrder(ctx context.Context, session entities.Session, orderID int64) (*entities.Order, error) {
	var resp orderDTO

	err := g.call(ctx, "GetOrder", request{
		method:     http.MethodGet,
		path:       "/orders/" + strconv.FormatInt(orderID, 10),
		session:    session,
		idempotent: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, get order %d: %w", orderID, err)
	}

	order, err := toDomainOrder(resp, g.location)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, get order %d: %w: %w", orderID, entities.ErrRemoteUnexpected, err)
	}
	return &order, nil
}

func (g *DinnerGateway) CancelOrder(ctx context.Context, session entities.Session, orderID int64) error {
	err := g.call(ctx, "CancelOrder", request{
		method:  http.MethodPost,
		path:    "/orders/" + strconv.FormatInt(orderID, 10) + "/cancel",
		session: session,
		body:    struct{}{},
	}, nil)
	if err != nil {
		return fmt.Errorf("gateway dinner, cancel order %d: %w", orderID, err)
	}
	return nil
}

func (g *DinnerGateway) ListChangeRequests(ctx context.Context, session entities.Session, orderID int64) ([]entities.ChangeRequest, error) {
	var resp []changeRequestDTO

	err := g.call(ctx, "ListChangeRequests", request{
		method:     http.MethodGet,
		path:       "/reservations/" + strconv.FormatInt(orderID, 10) + "/change-requests",
		session:    session,
		idempotent: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, list change requests %d: %w", orderID, err)
	}

	requests, err := toDomainChangeRequests(resp, g.location)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, list change requests %d: %w: %w", orderID, entities.ErrRemoteUnexpected, err)
	}
	return requests, nil
}

func (g *DinnerGateway) CreateChangeRequest(ctx context.Context, session entities.Session, modify entities.ChangeRequestModify) (*entities.ChangeRequest, error) {
	var resp changeRequestDTO

	err := g.call(ctx, "CreateChangeRequest", request{
		method:  http.MethodPost,
		path:    "/reservations/" + strconv.FormatInt(modify.OrderID, 10) + "/change-requests",
		session: session,
		body:    toChangeRequestCreateDTO(modify),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, create change request %d: %w", modify.OrderID, err)
	}

	cr, err := toDomainChangeRequest(resp, g.location)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, create change request %d: %w: %w", modify.OrderID, entities.ErrRemoteUnexpected, err)
	}
	return &cr, nil
}

func (g *DinnerGateway) GetProfile(ctx context.Context, session entities.Session) (*entities.Profile, error) {
	var resp profileDTO

	err := g.call(ctx, "GetProfile", request{
		method:     http.MethodGet,
		path:       "/auth/me",
		session:    session,
		idempotent: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, get profile: %w", err)
	}

	profile := toDomainProfile(resp)
	return &profile, nil
}

func (g *DinnerGateway) CreateOrder(ctx context.Context, session entities.Session, order entities.OrderCreate) (*entities.OrderCreated, error) {
	var resp orderCreatedDTO

	err := g.call(ctx, "CreateOrder", request{
		method:  http.MethodPost,
		path:    "/orders",
		session: session,
		body:    toOrderCreateDTO(order, g.location),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway dinner, create order: %w", err)
	}

	created := toDomainOrderCreated(resp)
	return &created, nil
}

type request struct {
	method  string
	path    string
	session entities.Session
	body    any
	// POST без идемпотентности повторяем только когда сервер точно не начал обработку (429, 503)
	idempotent bool
}

func (g *DinnerGateway) call(ctx context.Context, name string, req request, out any) error {
	var payload []byte
	if req.body != nil {
		var err error
		payload, err = json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	return g.executeWithMetrics(ctx, name, func(ctx context.Context) (int, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.method, g.baseURL+req.path, body)
		if err != nil {
			return 0, fmt.Errorf("build request: %w", err)
		}
		httpReq.Header.Set("Accept", "application/json")
		if payload != nil {
			httpReq.Header.Set("Content-Type", "application/json")
		}
		if req.session.Token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+req.session.Token)
		}

		resp, err := g.client.Do(httpReq)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return 0, ctxErr
			}
			if req.idempotent {
				return 0, fmt.Errorf("%w: %w: %w", errTemporary, entities.ErrRemoteUnavailable, err)
			}
			return 0, fmt.Errorf("%w: %w", entities.ErrRemoteUnavailable, err)
		}
		defer resp.Body.Close()

		if err := checkStatus(resp, req.idempotent); err != nil {
			return resp.StatusCode, err
		}

		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return resp.StatusCode, nil
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: decode body: %w", entities.ErrRemoteUnexpected, err)
		}
		return resp.StatusCode, nil
	})
}

func checkStatus(resp *http.Response, idempotent bool) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	remote := &entities.RemoteError{
		StatusCode: resp.StatusCode,
		Message:    readErrorMessage(resp.Body),
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		remote.Kind = entities.ErrRemoteUnauthorized
	case http.StatusForbidden:
		remote.Kind = entities.ErrRemoteForbidden
	case http.StatusNotFound:
		remote.Kind = entities.ErrRemoteNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		remote.Kind = entities.ErrRemoteRejected
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		remote.Kind = entities.ErrRemoteUnavailable
		return fmt.Errorf("%w: %w", errTemporary, remote)
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		remote.Kind = entities.ErrRemoteUnavailable
		if idempotent {
			return fmt.Errorf("%w: %w", errTemporary, remote)
		}
	default:
		remote.Kind = entities.ErrRemoteUnexpected
	}
	return remote
}

func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var dto errorDTO
	if err := json.Unmarshal(raw, &dto); err == nil && dto.Error != "" {
		return dto.Error
	}
	return strings.TrimSpace(string(raw))
}

// IsRetryable временные сбои: 429, 503, транспорт и 502/504 для идемпотентных запросов
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, errTemporary)
}

// latency metric -> attempts metric -> retrier -> http
func (g *DinnerGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) (int, error)) error {
	var (
		attempt    uint64
		statusCode int
	)
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		var err error
		statusCode, err = fn(ctx)
		return err
	})

	code := codeLabel(statusCode, err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func codeLabel(statusCode int, err error) string {
	if statusCode != 0 {
		return strconv.Itoa(statusCode)
	}
	if err == nil {
		return "OK"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "CANCELED"
	}
	return "TRANSPORT_ERROR"
}
