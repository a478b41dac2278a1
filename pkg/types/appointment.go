package types

import (
	"fmt"
	"time"
)

// Appointment books a service for a client. Two appointments starting at the
// same date and time are the same appointment.
type Appointment struct {
	Client  Client    `json:"client"`
	Service Service   `json:"service"`
	Start   time.Time `json:"start"`
	Done    bool      `json:"done"`
}

// IsSame reports whether both appointments start at the same instant.
func (a Appointment) IsSame(other Appointment) bool {
	return a.Start.Equal(other.Start)
}

// End returns the start time plus the service duration.
func (a Appointment) End() time.Time {
	minutes := a.Service.Duration.Mul(sixty).IntPart()
	return a.Start.Add(time.Duration(minutes) * time.Minute)
}

// Date returns the calendar day of the appointment.
func (a Appointment) Date() time.Time {
	return DateOnly(a.Start)
}

func (a Appointment) String() string {
	status := "pending"
	if a.Done {
		status = "done"
	}
	return fmt.Sprintf("%s %s-%s; %s (%s); %s %s; %s",
		FormatDate(a.Start), FormatTime(a.Start), FormatTime(a.End()),
		a.Client.Name, a.Client.Phone, a.Service.Code, a.Service.Title, status)
}
