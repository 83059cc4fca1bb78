package memory

import (
	"github.com/dirtlot-lab/dirtlot/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = interfaces.ErrNotFound

// Memory is an in-memory repository for development and tests
type Memory struct {
	car      *carRepository
	feedback *feedbackRepository
	user     *userRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		car:      newCarRepository(),
		feedback: newFeedbackRepository(),
		user:     newUserRepository(),
	}
}

func (m *Memory) Car() interfaces.CarRepository {
	return m.car
}

func (m *Memory) Feedback() interfaces.FeedbackRepository {
	return m.feedback
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Close() error {
	return nil
}
