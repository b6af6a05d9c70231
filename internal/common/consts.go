package common

// UnknownStr is the fallback rendering for out-of-range enum values.
const UnknownStr = "unknown"
