package usecase

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/logger"
)

type sessionUsecase struct {
	sessionRepo domain.SessionRepository
	ttl         time.Duration
	renewWindow time.Duration
}

func NewSessionUsecase(sessionRepo domain.SessionRepository, ttl, renewWindow time.Duration) domain.SessionUsecase {
	return &sessionUsecase{
		sessionRepo: sessionRepo,
		ttl:         ttl,
		renewWindow: renewWindow,
	}
}

// now returns the wall clock truncated to whole seconds. Every liveness
// comparison uses this so sub-second drift cannot flip a session between
// live and expired across two checks in the same request.
func (u *sessionUsecase) now() time.Time {
	return time.Now().Truncate(time.Second)
}

func (u *sessionUsecase) Create(ctx context.Context, userID int64, token, clientAddress string) (*domain.Session, error) {
	now := u.now()
	session := &domain.Session{
		UserID:        userID,
		Token:         token,
		ExpiresAt:     now.Add(u.ttl),
		ClientAddress: clientAddress,
		CreatedAt:     now,
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (u *sessionUsecase) FindLive(ctx context.Context, token string) (*domain.Session, error) {
	return u.sessionRepo.FindLive(ctx, token, u.now())
}

// Renew extends a live session by the renewal window. Expired and unknown
// tokens both report false; callers cannot tell them apart.
func (u *sessionUsecase) Renew(ctx context.Context, token string) (bool, error) {
	now := u.now()
	return u.sessionRepo.ExtendExpiry(ctx, token, now, now.Add(u.renewWindow))
}

func (u *sessionUsecase) Revoke(ctx context.Context, token string) bool {
	deleted, err := u.sessionRepo.Delete(ctx, token)
	if err != nil {
		// Logout must never surface a storage failure; report "not revoked"
		// and move on.
		logger.Log.Error("session revoke failed", "error", err)
		return false
	}
	return deleted
}
