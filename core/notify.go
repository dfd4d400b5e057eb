package core

type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

type (
	// Notification is a blocking, user facing message (success or failure of an action).
	Notification struct {
		Level   NotificationLevel
		Message string
	}

	// Notifier is any service that can surface notifications to the user.
	Notifier interface {
		Notify(n Notification)
	}
)

func NewSuccess(msg string) Notification { return Notification{Level: NotifySuccess, Message: msg} }
func NewFailure(msg string) Notification { return Notification{Level: NotifyError, Message: msg} }
