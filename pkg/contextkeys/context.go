package contextkeys

// Custom type to avoid collisions with other context values.
type contextKey string

// DBContextKey is where middleware stores the *gorm.DB handle (pool or
// per-test transaction) for the current request.
const DBContextKey = contextKey("db")
