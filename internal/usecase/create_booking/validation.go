package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/salonhub/SH-BookingService/internal/domain"
)

// validateRequest проверяет входные данные в зависимости от источника
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: business id must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}
	if req.StylistID != nil && *req.StylistID <= 0 {
		return fmt.Errorf("%w: stylist id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	switch req.Source {
	case SourcePublic:
		return validatePublicRequest(req)
	case SourceInternal:
		return validateInternalRequest(req)
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}
}

func validatePublicRequest(req *Request) error {
	if req.StylistID == nil {
		return fmt.Errorf("%w: stylist is required for public booking", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name too long", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return fmt.Errorf("%w: invalid customer email: %v", ErrInvalidInput, err)
	}
	return nil
}

func validateInternalRequest(req *Request) error {
	if req.CustomerID == nil || *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer id must be positive", ErrInvalidInput)
	}
	if req.ActorID == nil || *req.ActorID <= 0 {
		return fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	return nil
}
