package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrNotImplemented  ErrorCode = "not_implemented"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidInterval ErrorCode = "invalid_interval"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed          ErrorCode = "initialization_failed"
	ErrUnsupportedPlatform ErrorCode = "unsupported_platform"
	ErrShutdownFailed      ErrorCode = "shutdown_failed"

	// Enumeration and device errors
	ErrEnumeration    ErrorCode = "enumeration_failed"
	ErrDeviceRead     ErrorCode = "device_read_failed"
	ErrDeviceGone     ErrorCode = "device_gone"
	ErrMalformedValue ErrorCode = "malformed_value"

	// Application errors
	ErrInitApp        ErrorCode = "init_app_failed"
	ErrMainLoop       ErrorCode = "main_loop_failed"
	ErrAlreadyRunning ErrorCode = "already_running"

	// Telemetry errors
	ErrInitTelemetry   ErrorCode = "init_telemetry_failed"
	ErrRecordTelemetry ErrorCode = "record_telemetry_failed"
	ErrCloseTelemetry  ErrorCode = "close_telemetry_failed"

	// Operation errors
	ErrOperationFailed  ErrorCode = "operation_failed"
	ErrInvalidOperation ErrorCode = "invalid_operation"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:            "Internal error occurred",
	ErrInvalidArgument:     "Invalid argument provided",
	ErrNotImplemented:      "Operation not implemented",
	ErrInvalidConfig:       "Invalid configuration",
	ErrReadConfig:          "Failed to read configuration",
	ErrInvalidInterval:     "Invalid interval value",
	ErrInvalidLogLevel:     "Invalid log level",
	ErrInitFailed:          "Initialization failed",
	ErrUnsupportedPlatform: "Platform is not supported",
	ErrShutdownFailed:      "Shutdown failed",
	ErrEnumeration:         "Failed to enumerate batteries",
	ErrDeviceRead:          "Failed to read battery device",
	ErrDeviceGone:          "Battery device is no longer present",
	ErrMalformedValue:      "Malformed attribute value",
	ErrInitApp:             "Failed to initialize application",
	ErrMainLoop:            "Error in main loop",
	ErrAlreadyRunning:      "Another instance is already running",
	ErrInitTelemetry:       "Failed to initialize telemetry",
	ErrRecordTelemetry:     "Failed to record telemetry data",
	ErrCloseTelemetry:      "Failed to close telemetry connection",
	ErrOperationFailed:     "Operation failed",
	ErrInvalidOperation:    "Invalid operation",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
