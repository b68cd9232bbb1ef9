package slackcmd

import "strings"

type CommandType string

const (
	CmdAdd      CommandType = "add"
	CmdRemove   CommandType = "remove"
	CmdList     CommandType = "list"
	CmdShow     CommandType = "show"
	CmdNext     CommandType = "next"
	CmdWeeks    CommandType = "weeks"
	CmdSkip     CommandType = "skip"
	CmdUnskip   CommandType = "unskip"
	CmdConfig   CommandType = "config"
	CmdPause    CommandType = "pause"
	CmdResume   CommandType = "resume"
	CmdStatus   CommandType = "status"
	CmdAnnounce CommandType = "announce"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch parts[0] {
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "list", "ls":
		cmd.Type = CmdList
	case "show":
		cmd.Type = CmdShow
	case "next":
		cmd.Type = CmdNext
	case "weeks":
		cmd.Type = CmdWeeks
	case "skip":
		cmd.Type = CmdSkip
	case "unskip":
		cmd.Type = CmdUnskip
	case "config":
		cmd.Type = CmdConfig
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "status":
		cmd.Type = CmdStatus
	case "announce":
		cmd.Type = CmdAnnounce
	default:
		cmd.Type = CmdHelp
		cmd.Args = nil
	}

	return cmd, nil
}
