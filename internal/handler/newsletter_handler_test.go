package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/workhubpro/backend/internal/model"
	"github.com/workhubpro/backend/internal/repository"
	"github.com/workhubpro/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock NewsletterService
// ---------------------------------------------------------------------------

type mockNewsletterService struct {
	subscribeFunc   func(ctx context.Context, sub service.Subscription) (*service.SubscribeResult, error)
	unsubscribeFunc func(ctx context.Context, email string) error
	listFunc        func(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int, error)
	getFunc         func(ctx context.Context, email string) (*model.Subscriber, error)
	statsFunc       func(ctx context.Context) (*model.SubscriberStats, error)
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, sub service.Subscription) (*service.SubscribeResult, error) {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, sub)
	}
	return &service.SubscribeResult{SubscriberID: "sub-1", Email: sub.Email, Created: true, EmailSent: true}, nil
}

func (m *mockNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	if m.unsubscribeFunc != nil {
		return m.unsubscribeFunc(ctx, email)
	}
	return nil
}

func (m *mockNewsletterService) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockNewsletterService) Get(ctx context.Context, email string) (*model.Subscriber, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, email)
	}
	return &model.Subscriber{ID: "sub-1", Email: email}, nil
}

func (m *mockNewsletterService) Stats(ctx context.Context) (*model.SubscriberStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.SubscriberStats{}, nil
}

// ---------------------------------------------------------------------------
// POST /api/newsletter/subscribe tests
// ---------------------------------------------------------------------------

func TestNewsletterHandler_Subscribe_Created(t *testing.T) {
	var captured service.Subscription
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, sub service.Subscription) (*service.SubscribeResult, error) {
			captured = sub
			return &service.SubscribeResult{SubscriberID: "sub-1", Email: sub.Email, Created: true, EmailSent: true}, nil
		},
	}
	h := NewNewsletterHandler(mock)

	body := `{"email":"Sub@Example.com","source":"footer"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for a first-time subscription, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured.Email != "sub@example.com" {
		t.Errorf("expected normalized email forwarded, got %q", captured.Email)
	}
	if captured.Source != "footer" {
		t.Errorf("expected source=footer, got %q", captured.Source)
	}

	e := decodeEnvelope(t, rec)
	if !strings.Contains(e.Message, "Thank you for subscribing") {
		t.Errorf("unexpected message: %q", e.Message)
	}
}

func TestNewsletterHandler_Subscribe_Reactivated(t *testing.T) {
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, sub service.Subscription) (*service.SubscribeResult, error) {
			return &service.SubscribeResult{SubscriberID: "sub-1", Email: sub.Email, Created: false, EmailSent: true}, nil
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(`{"email":"sub@example.com"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a reactivation, got %d", rec.Code)
	}
	e := decodeEnvelope(t, rec)
	if !strings.Contains(e.Message, "Welcome back") {
		t.Errorf("unexpected message: %q", e.Message)
	}
}

func TestNewsletterHandler_Subscribe_AlreadySubscribed(t *testing.T) {
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, sub service.Subscription) (*service.SubscribeResult, error) {
			return nil, service.ErrAlreadySubscribed
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(`{"email":"sub@example.com"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	e := decodeEnvelope(t, rec)
	if !strings.Contains(e.Message, "already subscribed") {
		t.Errorf("unexpected message: %q", e.Message)
	}
}

func TestNewsletterHandler_Subscribe_Bounced(t *testing.T) {
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, sub service.Subscription) (*service.SubscribeResult, error) {
			return nil, service.ErrBounced
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(`{"email":"sub@example.com"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a bounced address, got %d", rec.Code)
	}
	e := decodeEnvelope(t, rec)
	if !strings.Contains(e.Message, "not eligible") {
		t.Errorf("unexpected message: %q", e.Message)
	}
}

func TestNewsletterHandler_Subscribe_InvalidEmail(t *testing.T) {
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, sub service.Subscription) (*service.SubscribeResult, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	e := decodeEnvelope(t, rec)
	if len(e.Errors) != 1 || e.Errors[0].Field != "email" {
		t.Errorf("expected one email field error, got %v", e.Errors)
	}
}

func TestNewsletterHandler_Subscribe_InvalidJSON(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{})

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader("{bad"))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestNewsletterHandler_Subscribe_ServiceError(t *testing.T) {
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, sub service.Subscription) (*service.SubscribeResult, error) {
			return nil, errors.New("db connection lost")
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(`{"email":"sub@example.com"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /api/newsletter/unsubscribe tests
// ---------------------------------------------------------------------------

func TestNewsletterHandler_Unsubscribe_Success(t *testing.T) {
	var captured string
	mock := &mockNewsletterService{
		unsubscribeFunc: func(ctx context.Context, email string) error {
			captured = email
			return nil
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe", strings.NewReader(`{"email":"sub@example.com"}`))
	rec := httptest.NewRecorder()
	h.Unsubscribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured != "sub@example.com" {
		t.Errorf("expected email forwarded, got %q", captured)
	}
	e := decodeEnvelope(t, rec)
	if !strings.Contains(e.Message, "successfully unsubscribed") {
		t.Errorf("unexpected message: %q", e.Message)
	}
}

func TestNewsletterHandler_Unsubscribe_NotFound(t *testing.T) {
	mock := &mockNewsletterService{
		unsubscribeFunc: func(ctx context.Context, email string) error {
			return repository.ErrNotFound
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe", strings.NewReader(`{"email":"nobody@example.com"}`))
	rec := httptest.NewRecorder()
	h.Unsubscribe(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	e := decodeEnvelope(t, rec)
	if !strings.Contains(e.Message, "not found") {
		t.Errorf("unexpected message: %q", e.Message)
	}
}

func TestNewsletterHandler_Unsubscribe_AlreadyUnsubscribed(t *testing.T) {
	mock := &mockNewsletterService{
		unsubscribeFunc: func(ctx context.Context, email string) error {
			return service.ErrAlreadyUnsubscribed
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe", strings.NewReader(`{"email":"sub@example.com"}`))
	rec := httptest.NewRecorder()
	h.Unsubscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestNewsletterHandler_Unsubscribe_InvalidEmail(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{})

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe", strings.NewReader(`{"email":""}`))
	rec := httptest.NewRecorder()
	h.Unsubscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing email, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Admin endpoint tests
// ---------------------------------------------------------------------------

func TestNewsletterHandler_AdminList_EmptyListNotNull(t *testing.T) {
	mock := &mockNewsletterService{
		listFunc: func(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int, error) {
			return nil, 0, nil
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/newsletter/admin/subscribers", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"subscribers":[]`) {
		t.Errorf("expected subscribers=[], got body %s", rec.Body.String())
	}
}

func TestNewsletterHandler_AdminList_ForwardsStatus(t *testing.T) {
	var capturedOpts model.SubscriberListOptions
	mock := &mockNewsletterService{
		listFunc: func(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int, error) {
			capturedOpts = opts
			return nil, 0, nil
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/newsletter/admin/subscribers?status=unsubscribed", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if capturedOpts.Status != "unsubscribed" {
		t.Errorf("expected status=unsubscribed forwarded, got %q", capturedOpts.Status)
	}
}

func TestNewsletterHandler_AdminGet_NotFound(t *testing.T) {
	mock := &mockNewsletterService{
		getFunc: func(ctx context.Context, email string) (*model.Subscriber, error) {
			return nil, repository.ErrNotFound
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/newsletter/admin/subscribers/nobody@example.com", nil)
	req.SetPathValue("email", "nobody@example.com")
	rec := httptest.NewRecorder()
	h.AdminGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestNewsletterHandler_AdminStats(t *testing.T) {
	mock := &mockNewsletterService{
		statsFunc: func(ctx context.Context) (*model.SubscriberStats, error) {
			return &model.SubscriberStats{Total: 12, Active: 9, Unsubscribed: 2, Bounced: 1}, nil
		},
	}
	h := NewNewsletterHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/newsletter/admin/stats", nil)
	rec := httptest.NewRecorder()
	h.AdminStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	e := decodeEnvelope(t, rec)
	var stats model.SubscriberStats
	if err := json.Unmarshal(e.Data, &stats); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if stats.Total != 12 || stats.Active != 9 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
