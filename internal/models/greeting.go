package models

import "strconv"

// Greeting is the record returned by the hello endpoint
type Greeting struct {
	Message   string
	Timestamp int64 // epoch milliseconds
}

// NewGreeting creates a Greeting stamped with the given epoch milliseconds
func NewGreeting(message string, timestampMillis int64) *Greeting {
	return &Greeting{
		Message:   message,
		Timestamp: timestampMillis,
	}
}

// GreetingData is the wire form of a Greeting. The timestamp travels as a string.
type GreetingData struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// GreetingResponse wraps the greeting under a "data" key
type GreetingResponse struct {
	Data GreetingData `json:"data"`
}

// ToResponse converts the greeting into its response envelope
func (g *Greeting) ToResponse() GreetingResponse {
	return GreetingResponse{
		Data: GreetingData{
			Message:   g.Message,
			Timestamp: strconv.FormatInt(g.Timestamp, 10),
		},
	}
}
