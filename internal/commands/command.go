package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/listd/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeFilter Type = "filter"
	TypeSearch Type = "search"
	TypeClear  Type = "clear"
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

type AddArgs struct {
	Text     string
	Priority model.Priority
}

type FilterArgs struct {
	Filter model.Filter
}

type SearchArgs struct {
	Query string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Filter *FilterArgs
	Search *SearchArgs
}

// Parse turns palette input like "/add high pay rent" into a Command.
// A leading slash is optional.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Query: strings.Join(args, " ")}}, nil
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	priority := model.PriorityMedium
	if p, ok := model.ParsePriority(args[0]); ok {
		priority = p
		args = args[1:]
	}
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text, Priority: priority}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires all, active, or completed"}
	}
	f, ok := model.ParseFilter(args[0])
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", args[0])}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: f}}, nil
}
