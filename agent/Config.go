package agent

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(seed uint64) (Agent, error)

	// ValidAgent returns whether the argument agent is valid for the
	// Config
	ValidAgent(Agent) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent the Config creates
	Type() Type
}

// ExplorerType names a method of exploration used by tabular agents
type ExplorerType string

const (
	// Greedy explores only in states without a policy entry
	Greedy  ExplorerType = "Greedy"
	EGreedy ExplorerType = "EGreedy"
	Softmax ExplorerType = "Softmax"
)
