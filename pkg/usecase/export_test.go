package usecase

// Exposed for tests that need a fixed reference time
var TimeSeriesAt = timeSeriesAt
