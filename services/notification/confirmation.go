package notification

import (
	"fmt"
	"html"

	"doctorsportal/models"
)

// BuildConfirmation renders the appointment confirmation email for booking.
func BuildConfirmation(booking models.Booking) EmailMessage {
	summary := fmt.Sprintf("Your Appointment for %s is on %s at %s is confirmed",
		booking.Treatment, booking.Date, booking.Slot)

	body := fmt.Sprintf(`
    <div>
      <h3>Hello %s</h3>
      <p>Your Appointment for %s is confirmed</p>
      <p>Looking forward to seeing you on %s at %s</p>

      <h4>Our Address:</h4>
      <p>Barishal Rupatali</p>
      <p>Bangladesh</p>
    </div>
    `,
		html.EscapeString(booking.PatientName),
		html.EscapeString(booking.Treatment),
		html.EscapeString(booking.Date),
		html.EscapeString(booking.Slot))

	return EmailMessage{
		To:      booking.Patient,
		ToName:  booking.PatientName,
		Subject: summary,
		Body:    summary,
		HTML:    body,
	}
}
