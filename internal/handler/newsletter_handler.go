package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/workhubpro/backend/internal/model"
	"github.com/workhubpro/backend/internal/repository"
	"github.com/workhubpro/backend/internal/service"
	"github.com/workhubpro/backend/internal/validation"
)

// NewsletterHandler handles newsletter subscription and the newsletter admin API.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a NewsletterHandler with the given service.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// subscribeRequest is the expected JSON body for POST /api/newsletter/subscribe.
type subscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

// subscribeData is the data block of a successful subscribe response.
type subscribeData struct {
	SubscriberID string `json:"subscriberId,omitempty"`
	Email        string `json:"email"`
	EmailSent    bool   `json:"emailSent"`
}

// Subscribe handles POST /api/newsletter/subscribe.
// 201 for a first-time subscription, 200 for a reactivation.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	input, errs := validation.Newsletter(validation.NewsletterInput{
		Email:  req.Email,
		Source: req.Source,
	})
	if errs != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  errs,
		})
		return
	}

	result, err := h.newsletterService.Subscribe(r.Context(), service.Subscription{
		Email:  input.Email,
		Source: input.Source,
		Meta: model.RequestMeta{
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		},
	})
	switch {
	case errors.Is(err, service.ErrAlreadySubscribed):
		writeError(w, http.StatusBadRequest, "This email is already subscribed to our newsletter.")
		return
	case errors.Is(err, service.ErrBounced):
		writeError(w, http.StatusBadRequest, "This email address is not eligible for subscription.")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "An error occurred while processing your subscription. Please try again later.")
		return
	}

	data := subscribeData{
		SubscriberID: result.SubscriberID,
		Email:        result.Email,
		EmailSent:    result.EmailSent,
	}
	if result.Created {
		writeSuccess(w, http.StatusCreated, "Thank you for subscribing to our newsletter!", data)
		return
	}
	writeSuccess(w, http.StatusOK, "Welcome back! You have been resubscribed to our newsletter.", data)
}

// unsubscribeRequest is the expected JSON body for POST /api/newsletter/unsubscribe.
type unsubscribeRequest struct {
	Email string `json:"email"`
}

// Unsubscribe handles POST /api/newsletter/unsubscribe.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	email, errs := validation.Email(req.Email)
	if errs != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  errs,
		})
		return
	}

	err := h.newsletterService.Unsubscribe(r.Context(), email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Email not found in our newsletter database.")
	case errors.Is(err, service.ErrAlreadyUnsubscribed):
		writeError(w, http.StatusBadRequest, "This email is already unsubscribed from our newsletter.")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "An error occurred while processing your unsubscription. Please try again later.")
	default:
		writeSuccess(w, http.StatusOK, "You have been successfully unsubscribed from our newsletter.", nil)
	}
}

// subscriberListData is the data block of the admin list response.
type subscriberListData struct {
	Subscribers []*model.Subscriber `json:"subscribers"`
	Pagination  pagination          `json:"pagination"`
}

// AdminList handles GET /api/newsletter/admin/subscribers.
// Supports query params: status, page, limit.
func (h *NewsletterHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	opts := model.SubscriberListOptions{
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	subscribers, total, err := h.newsletterService.List(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching subscribers.")
		return
	}

	if subscribers == nil {
		subscribers = []*model.Subscriber{}
	}

	writeSuccess(w, http.StatusOK, "", subscriberListData{
		Subscribers: subscribers,
		Pagination:  newPagination(page, limit, total),
	})
}

// AdminGet handles GET /api/newsletter/admin/subscribers/{email}.
func (h *NewsletterHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	subscriber, err := h.newsletterService.Get(r.Context(), r.PathValue("email"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Subscriber not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching the subscriber.")
		return
	}
	writeSuccess(w, http.StatusOK, "", subscriber)
}

// AdminStats handles GET /api/newsletter/admin/stats.
func (h *NewsletterHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.newsletterService.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching newsletter statistics.")
		return
	}
	writeSuccess(w, http.StatusOK, "", stats)
}
