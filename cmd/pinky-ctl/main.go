package main

import (
	"fmt"
	"os"

	"pinky/internal/ipc"
)

func main() {
	cmd := "wake"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if err := ipc.SendCommand(ipc.DefaultSocketPath, cmd); err != nil {
		fmt.Println("pinky-daemon not running:", err)
		return
	}
}
