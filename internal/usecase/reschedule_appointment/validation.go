package reschedule_appointment

import "fmt"

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: new date is required", ErrInvalidInput)
	}
	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: new start time is required", ErrInvalidInput)
	}
	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid new start time: %v", ErrInvalidInput, err)
	}
	if req.NewStylistID != nil && *req.NewStylistID <= 0 {
		return fmt.Errorf("%w: stylist id must be positive", ErrInvalidInput)
	}
	return nil
}
