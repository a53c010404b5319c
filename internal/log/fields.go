package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldMethod      = "method"
	FieldURL         = "url"
	FieldQuery       = "query"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldCollection  = "collection"
	FieldEntityID    = "entity_id"
	FieldSequence    = "sequence"
	FieldItemCount   = "item_count"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldGoalStatus  = "goal_status"
	FieldSheetsRef   = "sheets_ref"
)

// Components defines standard component names.
const (
	ComponentApp      = "app"
	ComponentAPI      = "api"
	ComponentStore    = "store"
	ComponentSnapshot = "snapshot"
	ComponentEvents   = "events"
	ComponentTheme    = "theme"
	ComponentExport   = "export"
	ComponentTrace    = "trace"
	ComponentSession  = "session"
)

// Operations defines standard operation names.
const (
	OpFetch      = "fetch"
	OpAdd        = "add"
	OpEdit       = "edit"
	OpContribute = "contribute"
	OpDelete     = "delete"
	OpLogin      = "login"
	OpRegister   = "register"
	OpExport     = "export"
	OpStartup    = "startup"
	OpShutdown   = "shutdown"
)

// LogFields provides a builder for structured log fields.
type LogFields map[string]any

// NewFields creates a new LogFields instance.
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds the component field.
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithOperation adds the operation field.
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds the error field when err is non-nil.
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithCollection adds collection mirror fields.
func (f LogFields) WithCollection(name string, itemCount int) LogFields {
	f[FieldCollection] = name
	f[FieldItemCount] = itemCount
	return f
}

// WithHTTPCall adds outgoing request fields.
func (f LogFields) WithHTTPCall(method, url string, statusCode int, durationMs int64) LogFields {
	f[FieldMethod] = method
	f[FieldURL] = url
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = durationMs
	f[FieldSuccess] = statusCode > 0 && statusCode < 400
	return f
}

// ToSlice converts LogFields to the flat key/value slice slog expects.
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
