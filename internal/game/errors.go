package game

import "errors"

var ErrRoomNotFound = errors.New("room not found")
