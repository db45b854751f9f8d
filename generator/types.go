package generator

// EcoLevel 环保程度（CO2 减排指数）的三级评价。
type EcoLevel string

const (
	EcoHigh   EcoLevel = "高"
	EcoMedium EcoLevel = "中"
	EcoLow    EcoLevel = "低"
)

// EcoLevels lists the ratings in descending order.
var EcoLevels = []EcoLevel{EcoHigh, EcoMedium, EcoLow}

// IdeaCount is how many upcycle ideas the prompt asks for.
const IdeaCount = 10

// State is the per-session credential state. The zero value is "not configured".
type State struct {
	CredentialConfigured bool
	// LLM is the client registered with the session's credential; nil until configured.
	LLM LLMClient
}

// NewState returns the state every session starts with.
func NewState() State {
	return State{}
}
