package config

type SessionKeyStruct struct{}

func NewSessionKeyStruct() *SessionKeyStruct {
	return &SessionKeyStruct{}
}

// ConsoleSessionKey returns the Redis key holding one admin session hash.
func (r *SessionKeyStruct) ConsoleSessionKey(sessionID string) string {
	return "console:session:" + sessionID
}

var SessionKey = NewSessionKeyStruct()
