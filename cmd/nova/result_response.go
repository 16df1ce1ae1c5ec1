package main

import "github.com/nova-launcher/nova/pkg/executor"

func executeResultResponse(result executor.Result) protocolResponse {
	return protocolResponse{
		OK:      result.Outcome != executor.ActionError,
		Outcome: outcomeName(result.Outcome),
		Message: result.Message,
	}
}

func outcomeName(o executor.Outcome) string {
	switch o {
	case executor.Success:
		return "success"
	case executor.SuccessKeepOpen:
		return "success_keep_open"
	case executor.OpenSettings:
		return "open_settings"
	case executor.Quit:
		return "quit"
	case executor.NeedsInput:
		return "needs_input"
	case executor.ActionError:
		return "error"
	default:
		return "unknown"
	}
}
