package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/zoomka/contact-intel/api/internal/dto"
	"github.com/zoomka/contact-intel/api/internal/entity"
	middlewarepkg "github.com/zoomka/contact-intel/api/internal/middleware"
	"github.com/zoomka/contact-intel/api/internal/repository"
	"github.com/zoomka/contact-intel/api/internal/service"
)

// ContactsHandler exposes the scan pipeline and the contact store.
type ContactsHandler struct {
	service  *service.ContactsService
	notifier ScanNotifier
}

// NewContactsHandler creates a new handler instance. The notifier may be nil
// when push delivery is disabled.
func NewContactsHandler(service *service.ContactsService, notifier ScanNotifier) *ContactsHandler {
	return &ContactsHandler{service: service, notifier: notifier}
}

// Scan handles POST /contacts/scan requests.
func (h *ContactsHandler) Scan(c echo.Context) error {
	var req dto.ScanRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.RawData == "" {
		return Error(c, http.StatusBadRequest, "raw_data is required")
	}

	resp, err := h.service.Scan(c.Request().Context(), req.RawData)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPayload) {
			return Error(c, http.StatusBadRequest, "raw_data is required")
		}
		return Error(c, http.StatusInternalServerError, "failed to process scan")
	}

	h.notifyScan(resp, middlewarepkg.RequestIDFromContext(c))

	return Success(c, http.StatusCreated, "contact captured", resp)
}

// ImportVCard handles POST /contacts/import-vcard requests.
func (h *ContactsHandler) ImportVCard(c echo.Context) error {
	var req dto.ImportVCardRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.VCard == "" {
		return Error(c, http.StatusBadRequest, "vcard is required")
	}

	resp, err := h.service.ImportVCard(c.Request().Context(), req.VCard)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to import vcard")
	}

	return Success(c, http.StatusCreated, "contact imported", resp)
}

// List handles GET /contacts requests.
func (h *ContactsHandler) List(c echo.Context) error {
	filter := dto.ContactListFilter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Limit:    parseIntDefault(c.QueryParam("limit"), 50),
		Offset:   parseIntDefault(c.QueryParam("offset"), 0),
	}

	contacts, err := h.service.ListContacts(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list contacts")
	}

	return Success(c, http.StatusOK, "contacts retrieved", contacts)
}

// ExportVCard handles GET /contacts/:id/vcard requests.
func (h *ContactsHandler) ExportVCard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid contact id")
	}

	card, err := h.service.ExportVCard(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return Error(c, http.StatusNotFound, "contact not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to export contact")
	}

	return c.Blob(http.StatusOK, "text/vcard", []byte(card))
}

// Delete handles DELETE /contacts/:id requests.
func (h *ContactsHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid contact id")
	}

	if err := h.service.DeleteContact(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return Error(c, http.StatusNotFound, "contact not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to delete contact")
	}

	return Success(c, http.StatusOK, "contact deleted", map[string]any{"id": id.String()})
}

// Categories handles GET /categories requests.
func (h *ContactsHandler) Categories(c echo.Context) error {
	return Success(c, http.StatusOK, "categories retrieved", entity.Categories())
}

// notifyScan fires the push notification without blocking the response. The
// request context ends with the response, so delivery gets its own deadline.
func (h *ContactsHandler) notifyScan(resp *dto.ScanResponse, requestID string) {
	if h.notifier == nil {
		return
	}
	event := ScanEvent{
		ContactID:   resp.Contact.ID.String(),
		DisplayName: resp.DisplayName,
		Category:    resp.Contact.Category,
		Score:       resp.Contact.Score,
		ScannedAt:   resp.Contact.ScannedAt,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.notifier.NotifyScan(ctx, event, requestID); err != nil {
			log.Printf("request_id=%s scan notification failed: %v", requestID, err)
		}
	}()
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
