package constants

// NATS Subjects
const (
	// Notification events published after a committed financial or lifecycle change
	SubjectPaymentCompleted     = "notification.payment.completed"
	SubjectReservationConfirmed = "notification.reservation.confirmed"
)
