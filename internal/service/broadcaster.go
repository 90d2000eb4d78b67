package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	PublishToSession(sessionID string, msgType string, payload interface{})
}

// NopBroadcaster drops every event
type NopBroadcaster struct{}

func (NopBroadcaster) PublishToSession(string, string, interface{}) {}
