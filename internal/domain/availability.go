package domain

import "github.com/salonhub/SH-BookingService/pkg/types"

// IsSlotAvailable проверяет, свободен ли слот candidate для услуги указанной
// длительности у мастера stylistID с учётом существующих записей на тот же день.
//
// Кандидат занимает диапазон индексов [startIdx, startIdx+slotsNeeded) в сетке;
// каждая существующая запись занимает свой диапазон, вычисленный по её собственной
// длительности. Конфликт — пересечение диапазонов.
//
// Правила:
//   - конфликты считаются только в рамках пары (мастер, день): записи без мастера
//     и записи других мастеров не конфликтуют с кандидатом;
//   - если хвост услуги выходит за пределы сетки, слот недоступен — услуга должна
//     целиком помещаться в рабочие часы;
//   - отменённые записи не участвуют в проверке;
//   - запись excludeAppointmentID исключается из конфликтов (перенос самой себя).
//
// Любое отсутствие предусловий (пустая сетка, нет мастера, нулевая длительность)
// означает "пока нельзя забронировать" и возвращает false, а не ошибку
func IsSlotAvailable(
	grid []types.TimeString,
	candidate types.TimeString,
	serviceDurationMinutes int,
	granularityMinutes int,
	existing []*Appointment,
	stylistID *int64,
	excludeAppointmentID int64,
) bool {
	if len(grid) == 0 || candidate.IsZero() || stylistID == nil {
		return false
	}
	if serviceDurationMinutes <= 0 || granularityMinutes <= 0 {
		return false
	}

	startIdx := SlotIndex(grid, candidate)
	if startIdx < 0 {
		return false
	}

	needed := SlotsNeeded(serviceDurationMinutes, granularityMinutes)

	// Хвост услуги должен помещаться в сетку
	if startIdx+needed > len(grid) {
		return false
	}

	candidateStart := candidate.Minutes()
	candidateEnd := candidateStart + serviceDurationMinutes

	for _, appt := range existing {
		if !appt.IsActive() {
			continue
		}
		if excludeAppointmentID != 0 && appt.ID == excludeAppointmentID {
			continue
		}
		// Записи без мастера и записи других мастеров не конфликтуют
		if appt.StylistID == nil || *appt.StylistID != *stylistID {
			continue
		}

		apptIdx := SlotIndex(grid, appt.StartTime)
		if apptIdx >= 0 {
			apptNeeded := SlotsNeeded(appt.DurationMinutes, granularityMinutes)
			if rangesIntersect(startIdx, startIdx+needed, apptIdx, apptIdx+apptNeeded) {
				return false
			}
			continue
		}

		// Запись не попадает в текущую сетку (настройки расписания менялись после бронирования).
		// Сравниваем полуоткрытые интервалы в минутах, чтобы не потерять занятость
		apptStart := appt.StartTime.Minutes()
		apptEnd := apptStart + appt.DurationMinutes
		if candidateStart < apptEnd && apptStart < candidateEnd {
			return false
		}
	}

	return true
}

// rangesIntersect проверяет пересечение полуоткрытых диапазонов [aStart,aEnd) и [bStart,bEnd)
func rangesIntersect(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
