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

// ContactHandler handles contact form submission and the contact admin API.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactSubmitRequest is the expected JSON body for POST /api/contact/submit.
type contactSubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// contactSubmitData is the data block of a successful submission response.
type contactSubmitData struct {
	ContactID string `json:"contactId"`
	EmailSent bool   `json:"emailSent"`
}

// Submit handles POST /api/contact/submit.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	input, errs := validation.Contact(validation.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if errs != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  errs,
		})
		return
	}

	result, err := h.contactService.Submit(r.Context(), service.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Meta: model.RequestMeta{
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while processing your request. Please try again later.")
		return
	}

	writeSuccess(w, http.StatusCreated,
		"Thank you for your message! We will get back to you within 24 hours.",
		contactSubmitData{ContactID: result.ContactID, EmailSent: result.EmailSent})
}

// contactListData is the data block of the admin list response.
type contactListData struct {
	Contacts   []*model.Contact `json:"contacts"`
	Pagination pagination       `json:"pagination"`
}

// AdminList handles GET /api/contact/admin/contacts.
// Supports query params: status, page, limit.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	opts := model.ContactListOptions{
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	contacts, total, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching contacts.")
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	writeSuccess(w, http.StatusOK, "", contactListData{
		Contacts:   contacts,
		Pagination: newPagination(page, limit, total),
	})
}

// AdminGet handles GET /api/contact/admin/contacts/{id}.
func (h *ContactHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching the contact.")
		return
	}
	writeSuccess(w, http.StatusOK, "", contact)
}

// updateStatusRequest is the expected JSON body for the status PATCH.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/contact/admin/contacts/{id}/status.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.contactService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "Invalid status. Must be one of: new, read, replied, closed")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Contact not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "An error occurred while updating the contact status.")
	default:
		writeSuccess(w, http.StatusOK, "Contact status updated successfully", nil)
	}
}

// Delete handles DELETE /api/contact/admin/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.contactService.Delete(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Contact not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "An error occurred while deleting the contact.")
	default:
		writeSuccess(w, http.StatusOK, "Contact deleted successfully", nil)
	}
}
