// Package ipc is the daemon's unix-socket control channel. pinky-ctl uses it
// to force a wake cycle or request shutdown without saying the wake word.
package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
)

const DefaultSocketPath = "/tmp/pinky.sock"

type ControlMessage struct {
	Cmd string `json:"cmd"`
}

// StartServer listens on the unix socket at path and calls handler for every
// decoded control message. A stale socket file from a previous run is
// replaced. When ctx is cancelled the listener closes, the accept loop
// drains, and the socket file is removed.
func StartServer(ctx context.Context, path string, handler func(ControlMessage)) error {
	os.Remove(path)

	ln, err := net.Listen("unix", path)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", path, err)
	}

	go func() {
		<-ctx.Done()
		ln.Close()
		os.Remove(path)
	}()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return
				}
				continue
			}
			go serveConn(conn, handler)
		}
	}()

	return nil
}

func serveConn(conn net.Conn, handler func(ControlMessage)) {
	defer conn.Close()

	var msg ControlMessage
	if err := json.NewDecoder(conn).Decode(&msg); err != nil {
		return
	}
	handler(msg)
}

// SendCommand delivers one control message to the daemon listening at path.
func SendCommand(path, cmd string) error {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return err
	}
	defer conn.Close()

	return json.NewEncoder(conn).Encode(ControlMessage{Cmd: cmd})
}
