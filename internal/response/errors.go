package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrSessionExpired     ErrCode = "SESSION_EXPIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Upstream platform ─────────────────────────────────────────────
	ErrUpstreamRejected    ErrCode = "UPSTREAM_REJECTED"
	ErrUpstreamUnavailable ErrCode = "UPSTREAM_UNAVAILABLE"
	ErrNotFound            ErrCode = "NOT_FOUND"

	// ─── Screens ───────────────────────────────────────────────────────
	ErrUnknownScreen       ErrCode = "UNKNOWN_SCREEN"
	ErrAttachmentRequired  ErrCode = "ATTACHMENT_REQUIRED"
	ErrAttachmentAmbiguous ErrCode = "ATTACHMENT_AMBIGUOUS"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid email or password."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is not valid."
	case ErrSessionExpired:
		return "Session expired. Please login again."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid identifier format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrUpstreamRejected:
		return "The platform rejected the operation."
	case ErrUpstreamUnavailable:
		return "Unable to reach the platform. Please check your connection and try again."
	case ErrNotFound:
		return "Resource not found."
	case ErrUnknownScreen:
		return "Unknown resource screen."
	case ErrAttachmentRequired:
		return "An uploaded file or a URL is required."
	case ErrAttachmentAmbiguous:
		return "Provide either an uploaded file or a URL, not both."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
