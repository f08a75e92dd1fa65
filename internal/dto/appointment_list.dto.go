package dto

type AppointmentListDTO struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	BarberID        uint   `json:"barber_id"`
	BarberName      string `json:"barber_name"`
	CustomerID      uint   `json:"customer_id"`
	ServiceID       uint   `json:"service_id"`
	ServiceName     string `json:"service_name"`
	RescheduledTo   string `json:"rescheduled_to,omitempty"`
}
