package room

type Broadcaster interface {
	Broadcast(gameCode string, action string, data interface{})
}
