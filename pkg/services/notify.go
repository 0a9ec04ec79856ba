package services

// Notifier receives user-facing notices (confirmations, alerts) emitted by
// the stores. The UI decides how to present them; stores never render.
type Notifier func(title, message string)

func (n Notifier) notify(title, message string) {
	if n != nil {
		n(title, message)
	}
}

// Storage is the key-value persistence the stores write through to.
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
