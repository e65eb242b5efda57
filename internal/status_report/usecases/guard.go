package usecases

import (
	"context"
	"fmt"

	shareddomain "status-report-server/internal/shared_kernel/domain"
)

type statusReportCreationKey struct{}

// WithStatusReportCreation marks ctx as part of a status report generation.
// Non-privileged actors may only write indicator values under this flag.
func WithStatusReportCreation(ctx context.Context) context.Context {
	return context.WithValue(ctx, statusReportCreationKey{}, true)
}

func IsStatusReportCreation(ctx context.Context) bool {
	flag, _ := ctx.Value(statusReportCreationKey{}).(bool)
	return flag
}

func AuthorizeValueMutation(ctx context.Context, actor shareddomain.Actor) error {
	if actor.IsPrivileged() || IsStatusReportCreation(ctx) {
		return nil
	}
	return fmt.Errorf("%w: user %s tried to write an indicator value", ErrPermissionDenied, actor)
}
