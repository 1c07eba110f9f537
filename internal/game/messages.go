package game

import "encoding/json"

const (
	typeCreateRoom = "create_room"
	typeJoinRoom   = "join_room"
	typeStartGame  = "start_game"
	typeKeyPress   = "key_press"

	typeRoomCreated   = "room_created"
	typeJoined        = "joined"
	typeReadyToStart  = "ready_to_start"
	typeShowDirection = "show_direction"
	typeGameOver      = "game_over"
)

type clientEnvelope struct {
	Type      string    `json:"type"`
	RoomId    string    `json:"roomId"`
	Direction Direction `json:"direction"`
}

type serverEnvelope struct {
	Type      string         `json:"type"`
	RoomId    string         `json:"roomId,omitempty"`
	Direction Direction      `json:"direction,omitempty"`
	Winner    string         `json:"winner,omitempty"`
	Progress  map[string]int `json:"progress,omitempty"`
}

func marshalRoomCreated(roomId string) []byte {
	data, _ := json.Marshal(serverEnvelope{Type: typeRoomCreated, RoomId: roomId})
	return data
}

func marshalJoined(roomId string) []byte {
	data, _ := json.Marshal(serverEnvelope{Type: typeJoined, RoomId: roomId})
	return data
}

func marshalReadyToStart() []byte {
	data, _ := json.Marshal(serverEnvelope{Type: typeReadyToStart})
	return data
}

func marshalShowDirection(direction Direction, progress map[string]int) []byte {
	data, _ := json.Marshal(serverEnvelope{Type: typeShowDirection, Direction: direction, Progress: progress})
	return data
}

func marshalGameOver(winner string, progress map[string]int) []byte {
	data, _ := json.Marshal(serverEnvelope{Type: typeGameOver, Winner: winner, Progress: progress})
	return data
}
