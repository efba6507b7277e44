package interfaces

// Repository aggregates all entity repositories behind one storage backend
type Repository interface {
	Agent() AgentRepository
	Log() LogRepository
	Conversation() ConversationRepository
	Settings() SettingsRepository

	// Close releases backend resources
	Close() error
}
