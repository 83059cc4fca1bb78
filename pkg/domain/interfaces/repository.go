package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Car() CarRepository
	Feedback() FeedbackRepository
	User() UserRepository

	Close() error
}
