package businessservice

// Business модель бизнеса из BusinessService
type Business struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"owner_id"`
	Name        string  `json:"name"`
	BookingLink string  `json:"booking_link"` // публичный slug страницы бронирования
	Email       *string `json:"email,omitempty"`
	ThemeColor  *string `json:"theme_color,omitempty"`  // косметика публичной страницы
	AccentColor *string `json:"accent_color,omitempty"` // пробрасывается как есть
}

// ErrorResponse модель ошибки от BusinessService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
