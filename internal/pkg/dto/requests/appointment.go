package requests

import "time"

// ContactRequest carries the booker's contact details. Every field is
// optional on the wire; presence rules are enforced by the booking
// validator, not here.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Timezone  string `json:"timezone"`
}

type AppointmentRequest struct {
	Topic     string    `json:"topic"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// BookAppointmentRequest is the POST /api/appointments body. The contact and
// appointment blocks stay pointers so a missing block is distinguishable
// from an empty one.
type BookAppointmentRequest struct {
	Contact     *ContactRequest     `json:"contact"`
	Appointment *AppointmentRequest `json:"appointment"`
}
