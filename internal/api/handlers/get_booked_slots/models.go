package get_booked_slots

import (
	"time"

	getBookedSlots "github.com/m04kA/SC-AppointmentService/internal/usecase/get_booked_slots"
)

// BookedSlotResponse занятый интервал в ответе API
type BookedSlotResponse struct {
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339
}

// BookedSlotsResponse ответ со списком занятых интервалов
type BookedSlotsResponse struct {
	From  string               `json:"from"`
	To    string               `json:"to"`
	Slots []BookedSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedSlots.Response) *BookedSlotsResponse {
	slots := make([]BookedSlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, BookedSlotResponse{
			StartTime: slot.Start.Format(time.RFC3339),
			EndTime:   slot.End.Format(time.RFC3339),
		})
	}

	return &BookedSlotsResponse{
		From:  resp.From.Format(time.RFC3339),
		To:    resp.To.Format(time.RFC3339),
		Slots: slots,
	}
}
