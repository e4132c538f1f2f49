package domain

import "github.com/salonhub/SH-BookingService/pkg/types"

// GenerateSlots генерирует сетку слотов на день из настроек расписания
// Слоты идут от StartHour с шагом Granularity, включая граничный слот,
// совпадающий с EndHour, но никогда не позже него.
// Если StartHour >= EndHour, возвращает пустую сетку — это валидное состояние
// "часы не настроены", а не ошибка.
//
// Результат отсортирован по возрастанию и не содержит дубликатов;
// повторный вызов с теми же настройками даёт идентичную сетку
func GenerateSlots(settings *AgendaSettings) []types.TimeString {
	if settings == nil {
		return []types.TimeString{}
	}

	start := settings.StartHour
	end := settings.EndHour
	if start.IsZero() || end.IsZero() || start.Validate() != nil || end.Validate() != nil {
		return []types.TimeString{}
	}
	if !start.IsBefore(end) {
		return []types.TimeString{}
	}

	granularity := settings.Granularity()

	slots := make([]types.TimeString, 0)
	current := start

	for !current.IsAfter(end) {
		// Граница суток не бывает временем начала записи
		if current == types.EndOfDay {
			break
		}
		slots = append(slots, current)

		next, err := current.AddMinutes(granularity)
		if err != nil {
			// Вышли за пределы суток — сетка обрывается
			break
		}
		current = next
	}

	return slots
}

// SlotIndex возвращает индекс слота в сетке или -1, если слот вне сетки
// Поиск линейный по строковому представлению времени
func SlotIndex(grid []types.TimeString, slot types.TimeString) int {
	for i, s := range grid {
		if s.String() == slot.String() {
			return i
		}
	}
	return -1
}

// SlotsNeeded возвращает количество слотов сетки, занимаемых услугой
// указанной длительности: ceil(durationMinutes / granularityMinutes)
func SlotsNeeded(durationMinutes, granularityMinutes int) int {
	if durationMinutes <= 0 || granularityMinutes <= 0 {
		return 0
	}
	return (durationMinutes + granularityMinutes - 1) / granularityMinutes
}
