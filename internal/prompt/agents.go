package prompt

import "github.com/alienxp03/splitdecision/internal/core"

// AgentInfo carries an agent's presentation attributes. These never feed
// into orchestration decisions, only into prompts and the UI.
type AgentInfo struct {
	Key   core.AgentKey `json:"key"`
	Name  string        `json:"name"`
	Emoji string        `json:"emoji"`
	Color string        `json:"color"`
}

var agents = map[core.AgentKey]AgentInfo{
	core.AgentAnalyst:    {Key: core.AgentAnalyst, Name: "The Analyst", Emoji: "\U0001F4CA", Color: "#3b82f6"},
	core.AgentContrarian: {Key: core.AgentContrarian, Name: "The Contrarian", Emoji: "\U0001F525", Color: "#ef4444"},
	core.AgentPragmatist: {Key: core.AgentPragmatist, Name: "The Pragmatist", Emoji: "\U0001F9EA", Color: "#22c55e"},
	core.AgentWildcard:   {Key: core.AgentWildcard, Name: "The Wildcard", Emoji: "\U0001F0CF", Color: "#a855f7"},
}

// Agent returns the presentation info for an agent key.
func Agent(key core.AgentKey) AgentInfo {
	return agents[key]
}

// Agents returns all agents in canonical speaking order.
func Agents() []AgentInfo {
	out := make([]AgentInfo, 0, len(core.AgentOrder))
	for _, key := range core.AgentOrder {
		out = append(out, agents[key])
	}
	return out
}

// Categories lists the selectable comparison categories.
var Categories = []string{"General", "Tech", "Cars", "Life", "Career", "Food", "Other"}

// Example is a suggested comparison shown on the input form.
type Example struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Label string `json:"label"`
}

// Examples lists the suggested comparisons.
var Examples = []Example{
	{A: "React", B: "Svelte", Label: "React vs Svelte"},
	{A: "Tesla Model 3", B: "BMW i4", Label: "Tesla vs BMW"},
	{A: "Working from Home", B: "Office", Label: "WFH vs Office"},
	{A: "Mac", B: "Windows for developers", Label: "Mac vs Windows"},
}

// ModelInfo describes a selectable model.
type ModelInfo struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Models lists the models the UI offers.
var Models = []ModelInfo{
	{ID: "gpt-4o-mini", Label: "GPT-4o Mini (Recommended)", Description: "Fast & cheap, great for most comparisons"},
	{ID: "gpt-4.1-nano", Label: "GPT-4.1 Nano", Description: "Cheapest option, less personality"},
	{ID: "gpt-4.1-mini", Label: "GPT-4.1 Mini", Description: "Newer model, good balance"},
}
