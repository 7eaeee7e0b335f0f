package contextkeys

// Custom key type to avoid collisions with other context users.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (connection pool
// or an injected transaction) is stored for the duration of a request.
const DBContextKey = contextKey("db")
