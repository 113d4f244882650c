// Package notification delivers outbound messages to account holders.
package notification

// NotificationData describes one outbound message.
type NotificationData struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers a notification to a recipient.
type Notifier interface {
	Send(notification NotificationData) error
}
