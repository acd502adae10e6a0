package common

// UnknownStr is the name printed for enum values outside their known range.
const UnknownStr = "unknown"
