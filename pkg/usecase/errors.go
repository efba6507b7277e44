package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// Not found errors
	ErrAgentNotFound        = errors.New("agent not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMarketplaceNotFound  = errors.New("marketplace entry not found")

	// Share codec errors
	ErrInvalidShareCode = errors.New("invalid share code")
)
