package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
	CodeFraudBlocked ErrorCode = "FRAUD_BLOCKED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidRole      ErrorCode = "INVALID_ROLE"

	// Resources
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeMealNotFound    ErrorCode = "MEAL_NOT_FOUND"
	CodeOrderNotFound   ErrorCode = "ORDER_NOT_FOUND"
	CodeReviewNotFound  ErrorCode = "REVIEW_NOT_FOUND"
	CodeRequestNotFound ErrorCode = "REQUEST_NOT_FOUND"
	CodeNotFound        ErrorCode = "NOT_FOUND"

	// Business logic
	CodeNotOwner            ErrorCode = "NOT_OWNER"
	CodeConflict            ErrorCode = "CONFLICT"
	CodeRequestDecided      ErrorCode = "REQUEST_ALREADY_DECIDED"
	CodeFavoriteExists      ErrorCode = "FAVORITE_ALREADY_EXISTS"
	CodeIllegalTransition   ErrorCode = "ILLEGAL_ORDER_TRANSITION"
	CodeChefIDMissing       ErrorCode = "CHEF_ID_MISSING"
	CodeCannotFlagAdmin     ErrorCode = "CANNOT_FLAG_ADMIN"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
