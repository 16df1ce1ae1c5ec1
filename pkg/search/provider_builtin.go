package search

import "strings"

// builtinCommands is the fixed set of app/system actions always
// available, regardless of configuration.
var builtinCommands = []BuiltinCommand{
	{ID: "nova:settings", Title: "Settings", Desc: "Open Nova settings"},
	{ID: "nova:quit", Title: "Quit Nova", Desc: "Exit the launcher"},
	{ID: "system:lock", Title: "Lock Screen", Desc: "Lock the current session"},
	{ID: "system:sleep", Title: "Sleep", Desc: "Suspend the computer"},
	{ID: "system:logout", Title: "Log Out", Desc: "End the current session"},
	{ID: "system:restart", Title: "Restart", Desc: "Reboot the computer"},
	{ID: "system:shutdown", Title: "Shut Down", Desc: "Power off the computer"},
}

// builtinProvider matches the query against the fixed command set by
// title or description substring.
type builtinProvider struct{}

func (builtinProvider) ShouldTrigger(query string) bool {
	return strings.TrimSpace(query) != ""
}

func (builtinProvider) Produce(query string, ctx *Context) []Result {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Result
	for _, c := range builtinCommands {
		if strings.Contains(strings.ToLower(c.Title), q) || strings.Contains(strings.ToLower(c.Desc), q) {
			out = append(out, c)
		}
	}
	return out
}
