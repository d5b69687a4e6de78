package notify

import (
	"context"
	"os/exec"
)

// CommandPlayer plays the notification sound by spawning an external player
// on the fixed sound file.
type CommandPlayer struct {
	command string
	file    string
}

func NewCommandPlayer(command, file string) *CommandPlayer {
	return &CommandPlayer{
		command: command,
		file:    file,
	}
}

func (p *CommandPlayer) Play(ctx context.Context) error {
	return exec.CommandContext(ctx, p.command, p.file).Run()
}
