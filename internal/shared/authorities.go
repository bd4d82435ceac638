package shared

// Interaction log permissions.
const (
	PermInteractionReadAll        = "user-interaction:read-all"
	PermInteractionReadByUsername = "user-interaction:read-by-username"
	PermInteractionReadOwn        = "user-interaction:read-my-interactions"
)

// InteractionScopes lists all permissions related to the interaction log.
func InteractionScopes() []string {
	return []string{
		PermInteractionReadAll,
		PermInteractionReadByUsername,
		PermInteractionReadOwn,
	}
}
