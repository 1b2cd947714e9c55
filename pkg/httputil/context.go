package httputil

// ContextKey is the type of keys that the API stores in the request context.
type ContextKey string

// ContextURL is the key for the public URL of the API.
const ContextURL ContextKey = "finboard.url"
