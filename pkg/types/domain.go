package types

// Domain names one category of reconcilable state.
type Domain string

const (
	// DomainCargo covers "cargo install" lines, keyed by crate name.
	DomainCargo Domain = "cargo"
	// DomainPixi covers "pixi global install" lines, keyed by recipe.
	DomainPixi Domain = "pixi"
	// DomainGitConfig covers "git config set --global" lines, keyed by option.
	DomainGitConfig Domain = "git-config"
)

// String returns the domain name
func (d Domain) String() string {
	return string(d)
}

// Action is one recognized install or config line.
//
// Identity is unique within its domain for a given state. Payload is what
// two states are compared on: the declared command line for cargo, the
// "recipe=version" token for pixi and the (unquoted) value for git config.
type Action struct {
	Domain   Domain `json:"domain"`
	Identity string `json:"identity"`
	Payload  string `json:"payload"`

	// Line is the 1-based line number the action was declared on.
	Line int `json:"line"`
}

// SamePayload reports whether a and other would configure the same thing.
func (a Action) SamePayload(other Action) bool {
	return a.Domain == other.Domain && a.Payload == other.Payload
}
