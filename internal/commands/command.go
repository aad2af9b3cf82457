package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeSearch Type = "search"
	TypeFilter Type = "filter"
	TypeGoto   Type = "goto"
	TypeLogout Type = "logout"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs targets either "content" or "task".
type AddArgs struct {
	Kind  string
	Title string
}

type SearchArgs struct {
	Query string
}

type FilterArgs struct {
	Status string
}

type GotoArgs struct {
	Screen string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Search *SearchArgs
	Filter *FilterArgs
	Goto   *GotoArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSearch:
		return parseSearch(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeLogout:
		return Command{Type: TypeLogout, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a kind and a title"}
	}
	kind := strings.ToLower(args[0])
	if kind != "content" && kind != "task" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("add kind must be content or task, got %q", kind)}
	}
	title := strings.TrimSpace(strings.Join(args[1:], " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Kind: kind, Title: title}}, nil
}

func parseSearch(raw string, args []string) (Command, error) {
	// An empty query is valid; it clears the active search.
	return Command{Type: TypeSearch, Raw: raw, Search: &SearchArgs{Query: strings.Join(args, " ")}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{}}, nil
	}
	status := strings.ToUpper(args[0])
	switch status {
	case "PENDING", "COMPLETED", "REJECTED", "ALL":
		if status == "ALL" {
			status = ""
		}
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown status filter: %s", args[0])}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Status: status}}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a screen name"}
	}
	screen := strings.ToLower(args[0])
	switch screen {
	case "dashboard", "tasks", "profile":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown screen: %s", args[0])}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Screen: screen}}, nil
}
