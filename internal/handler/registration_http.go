package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"stoik.com/emailregistry/internal/core/domain"
	"stoik.com/emailregistry/internal/core/port"
)

const storageConflictDetail = "Conflicto de almacenamiento: código SMTP duplicado."

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

type EmailHTTPHandler struct {
	registrationService port.RegistrationService
	searchService       port.SearchService
	validate            *validator.Validate
}

// RegisterEmailRequest is one element of the registration payload. Any
// analisis_fraude sent by the caller is not read.
type RegisterEmailRequest struct {
	ClientID  *string `json:"cliente_id" validate:"required"`
	Recipient *string `json:"destinatario" validate:"required"`
	Sender    *string `json:"emisor" validate:"required"`
	Timestamp *string `json:"fecha" validate:"required"`
	SMTPCode  *string `json:"codigo_smtp" validate:"required"`
	Body      *string `json:"contenido" validate:"required"`
}

type SearchEmailsRequest struct {
	ClientID string `query:"cliente_id" validate:"required"`
	Body     string `query:"contenido"`
	Sender   string `query:"emisor"`
	Page     int    `query:"page" validate:"gte=1"`
	PageSize int    `query:"page_size" validate:"gte=1"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewEmailHTTPHandler(
	registrationService port.RegistrationService,
	searchService port.SearchService,
	validate *validator.Validate,
) *EmailHTTPHandler {
	return &EmailHTTPHandler{
		registrationService: registrationService,
		searchService:       searchService,
		validate:            validate,
	}
}

func (h *EmailHTTPHandler) Register() echo.HandlerFunc {
	return func(c echo.Context) error {
		var reqs []RegisterEmailRequest

		if err := (&echo.DefaultBinder{}).BindBody(c, &reqs); err != nil {
			log.WithError(err).Error("Failed to bind request")
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "Invalid request payload"})
		}

		records := make([]domain.EmailRecord, 0, len(reqs))
		for i, req := range reqs {
			record, err := h.toRecord(req)
			if err != nil {
				return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
					Detail: fmt.Sprintf("record %d: %v", i, err),
				})
			}
			records = append(records, record)
		}

		stored, err := h.registrationService.RegisterBatch(c.Request().Context(), records)
		if err != nil {
			return h.registrationError(c, err)
		}

		return c.JSON(http.StatusCreated, stored)
	}
}

func (h *EmailHTTPHandler) Search() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := SearchEmailsRequest{
			Page:     1,
			PageSize: 10,
		}

		if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "Invalid query parameters"})
		}
		if err := h.validate.Struct(req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
		}

		emails, err := h.searchService.Search(c.Request().Context(), domain.SearchFilter{
			ClientID:     req.ClientID,
			BodyContains: req.Body,
			Sender:       req.Sender,
			Page:         req.Page,
			PageSize:     req.PageSize,
		})
		if err != nil {
			log.WithError(err).WithField("clientID", req.ClientID).Error("Search failed")
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
		}

		return c.JSON(http.StatusOK, emails)
	}
}

func (h *EmailHTTPHandler) toRecord(req RegisterEmailRequest) (domain.EmailRecord, error) {
	if err := h.validate.Struct(req); err != nil {
		return domain.EmailRecord{}, err
	}

	timestamp, err := parseTimestamp(*req.Timestamp)
	if err != nil {
		return domain.EmailRecord{}, err
	}

	return domain.EmailRecord{
		ClientID:  *req.ClientID,
		Recipient: *req.Recipient,
		Sender:    *req.Sender,
		Timestamp: timestamp,
		SMTPCode:  *req.SMTPCode,
		Body:      *req.Body,
	}, nil
}

func (h *EmailHTTPHandler) registrationError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: validationErr.Detail})
	case errors.Is(err, domain.ErrStorageConflict):
		log.WithError(err).Warn("Email batch rolled back")
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: storageConflictDetail})
	case errors.Is(err, domain.ErrBatchTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Detail: err.Error()})
	}

	log.WithError(err).Error("Email registration failed")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid fecha %q", value)
}
