// api/audit/context.go
package audit

import "context"

type actorKey struct{}

// SystemActor is recorded when no authenticated user is attached to ctx.
const SystemActor = "system"

// WithActor attaches the id of the requesting user to ctx.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

func ActorFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(actorKey{}).(string); ok && id != "" {
		return id
	}
	return SystemActor
}
