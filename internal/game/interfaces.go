package game

// NetworkSession is the transport handle for one connected participant. The
// core never touches sockets directly; the websocket layer implements this.
type NetworkSession interface {
	Close(reason string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}
