package ports

// Notifier shows a short, transient message to the user.
type Notifier interface {
	Notice(msg string)
}
