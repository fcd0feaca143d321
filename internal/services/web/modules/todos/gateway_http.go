package todos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/todolist/internal/platform/timeouts"
	apperrors "github.com/louisbranch/todolist/internal/services/web/platform/errors"
)

const tracerName = "github.com/louisbranch/todolist/internal/services/web/modules/todos"

// NewHTTPGateway builds the production gateway for the remote todos REST API.
// A blank base URL yields a gateway that fails every call as unavailable.
func NewHTTPGateway(baseURL string, client *http.Client) TodoGateway {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return unavailableGateway{}
	}
	if client == nil {
		client = http.DefaultClient
	}
	return httpGateway{baseURL: baseURL, client: client, tracer: otel.Tracer(tracerName)}
}

type httpGateway struct {
	baseURL string
	client  *http.Client
	tracer  trace.Tracer
}

type createTodoRequest struct {
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (g httpGateway) ListTodos(ctx context.Context, userID int) ([]Todo, error) {
	query := url.Values{"userId": {strconv.Itoa(userID)}}
	var items []Todo
	if err := g.do(ctx, "todos.list", http.MethodGet, "/todos?"+query.Encode(), nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []Todo{}
	}
	return items, nil
}

func (g httpGateway) CreateTodo(ctx context.Context, userID int, title string) (Todo, error) {
	var created Todo
	body := createTodoRequest{UserID: userID, Title: title, Completed: false}
	if err := g.do(ctx, "todos.create", http.MethodPost, "/todos", body, &created); err != nil {
		return Todo{}, err
	}
	return created, nil
}

func (g httpGateway) UpdateTodo(ctx context.Context, _ int, todoID int, patch TodoPatch) (Todo, error) {
	var updated Todo
	if err := g.do(ctx, "todos.update", http.MethodPatch, todoPath(todoID), patch, &updated); err != nil {
		return Todo{}, err
	}
	return updated, nil
}

func (g httpGateway) DeleteTodo(ctx context.Context, _ int, todoID int) error {
	return g.do(ctx, "todos.delete", http.MethodDelete, todoPath(todoID), nil, nil)
}

func todoPath(todoID int) string {
	return "/todos/" + strconv.Itoa(todoID)
}

// do performs one JSON round trip. out may be nil when the response body is
// ignored.
func (g httpGateway) do(ctx context.Context, operation string, method string, path string, body any, out any) (err error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.UpstreamRequest)
	defer cancel()

	target := g.baseURL + path
	ctx, span := g.tracer.Start(ctx, operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", target),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return apperrors.Error{Kind: apperrors.KindUnavailable, Message: "encode todos api request", Cause: marshalErr}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return apperrors.Error{Kind: apperrors.KindUnavailable, Message: "build todos api request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := g.client.Do(req)
	if err != nil {
		return apperrors.Error{Kind: apperrors.KindUnavailable, Message: "todos api request failed", Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return apperrors.FromUpstreamStatus(resp.StatusCode, fmt.Sprintf("todos api %s %s returned %d", method, path, resp.StatusCode))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Error{Kind: apperrors.KindUnavailable, Message: "decode todos api response", Cause: err}
	}
	return nil
}
