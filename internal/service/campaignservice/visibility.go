package campaignservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/pawhaven/fundraising/internal/domain"
)

// Caller identifies who is asking. Role, when set, comes straight from a
// verified token claim; otherwise the role is looked up by user id.
type Caller struct {
	ID   *int
	Role string
}

const adminRole = "admin"

// resolveCallerRole prefers the direct role claim and falls back to a user
// store lookup. The second return value reports whether any role could be
// established.
func (s *Service) resolveCallerRole(ctx context.Context, caller Caller) (string, bool, error) {
	if caller.Role != "" {
		return caller.Role, true, nil
	}
	if caller.ID == nil {
		return "", false, nil
	}

	user, err := s.userRepo.FindByID(ctx, *caller.ID)
	if err != nil {
		zap.L().Error("failed to resolve caller role", zap.Error(err))
		return "", false, err
	}
	if user == nil {
		return "", false, nil
	}
	return user.Role, true, nil
}

var publiclyVisible = []string{OngoingStatus, CompleteStatus}

// List returns campaigns the caller is allowed to see. Administrators see
// every status. Known non-admin roles see only ONGOING and COMPLETE, and an
// explicit request for a hidden status is rejected rather than silently
// filtered. Callers with no resolvable role see everything; that keeps older
// unauthenticated clients working.
func (s *Service) List(ctx context.Context, caller Caller, statusFilter string, limit, offset int) ([]domain.Campaign, error) {
	if statusFilter != "" && !validStatus(statusFilter) {
		return nil, &ValidationError{Field: "status", Reason: "unknown status " + statusFilter}
	}

	role, known, err := s.resolveCallerRole(ctx, caller)
	if err != nil {
		return nil, err
	}

	// Must stay non-nil: a nil slice reaches the driver as SQL NULL and the
	// status predicate then matches no rows at all.
	statuses := []string{}
	switch {
	case !known || role == adminRole:
		if statusFilter != "" {
			statuses = []string{statusFilter}
		}
	default:
		if statusFilter != "" {
			if statusFilter != OngoingStatus && statusFilter != CompleteStatus {
				return nil, ErrStatusNotAllowed
			}
			statuses = []string{statusFilter}
		} else {
			statuses = publiclyVisible
		}
	}

	campaigns, err := s.campaignRepo.FindByStatuses(ctx, statuses, limit, offset)
	if err != nil {
		zap.L().Error("failed to list campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}
