// Package service contains application use cases.
package service

import "context"

// GreetingMessage is the fixed text served by the greeting endpoint.
const GreetingMessage = "welcome to Spring Boot Application"

// Greeter produces the greeting returned to callers.
type Greeter interface {
	Greeting(ctx context.Context) (string, error)
}

// GreetingService is the default Greeter. It always returns GreetingMessage.
type GreetingService struct{}

// NewGreetingService creates a new GreetingService.
func NewGreetingService() *GreetingService {
	return &GreetingService{}
}

// Greeting returns GreetingMessage.
func (s *GreetingService) Greeting(ctx context.Context) (string, error) {
	return GreetingMessage, nil
}
