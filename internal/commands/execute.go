package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Search func(SearchArgs) (Result, error)
	Filter func(FilterArgs) (Result, error)
	Goto   func(GotoArgs) (Result, error)
	Logout func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeSearch:
		if handlers.Search == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "search handler not configured"}
		}
		return handlers.Search(*cmd.Search)
	case TypeFilter:
		if handlers.Filter == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "filter handler not configured"}
		}
		return handlers.Filter(*cmd.Filter)
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goto handler not configured"}
		}
		return handlers.Goto(*cmd.Goto)
	case TypeLogout:
		if handlers.Logout == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "logout handler not configured"}
		}
		return handlers.Logout()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
