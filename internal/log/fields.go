package log

// FieldComponent names the subsystem a record comes from.
const FieldComponent = "component"

// Standard component names.
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentStorage  = "storage"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
	ComponentReminder = "reminder"
)
