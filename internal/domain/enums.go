package domain

// LifecycleState is the deployment state of an API.
type LifecycleState string

const (
	LifecycleStateStarted LifecycleState = "started"
	LifecycleStateStopped LifecycleState = "stopped"
)

// ValidLifecycleStates lists the accepted LifecycleState values.
var ValidLifecycleStates = map[LifecycleState]bool{
	LifecycleStateStarted: true,
	LifecycleStateStopped: true,
}

// Visibility controls who can discover an API.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ValidVisibilities lists the accepted Visibility values.
var ValidVisibilities = map[Visibility]bool{
	VisibilityPublic:  true,
	VisibilityPrivate: true,
}
