package get_available_slots

import (
	"time"

	"github.com/salonhub/SH-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID int64     // ID бизнеса
	ServiceID  int64     // ID услуги (определяет длительность)
	StylistID  *int64    // ID мастера (nil = мастер ещё не выбран)
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа с сеткой слотов на день
type Response struct {
	Date       time.Time // Дата, на которую запрашивались слоты
	BusinessID int64     // ID бизнеса
	ServiceID  int64     // ID услуги
	StylistID  *int64    // ID мастера
	Slots      []Slot    // Сетка слотов с признаком доступности
}

// Slot слот сетки расписания
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Свободен ли слот для выбранной услуги и мастера
}
