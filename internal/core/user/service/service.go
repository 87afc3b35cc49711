package userapp

import (
	"context"

	"github.com/Mikielai/crudblog/internal/core/apperr"
	userEntity "github.com/Mikielai/crudblog/internal/core/user"
	identityPort "github.com/Mikielai/crudblog/internal/ports/identity"
	userPort "github.com/Mikielai/crudblog/internal/ports/user"

	"go.uber.org/zap"
)

// Provider lifecycle event types as emitted by the identity provider.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// UserService keeps the local user table consistent with the identity
// provider: webhook reconciliation on one side, lazy upsert-on-first-write
// on the other.
type UserService struct {
	UserRepository userPort.UserRepository
	Logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		Logger:         logger,
	}
}

// Reconcile applies a provider lifecycle event. Events may arrive out of
// order and more than once; created/updated collapse into one upsert
// (last write wins) and deleted tolerates an absent row. Unrecognized event
// types are ignored.
func (s *UserService) Reconcile(ctx context.Context, eventType string, p userPort.Profile) error {
	switch eventType {
	case EventUserCreated, EventUserUpdated:
		u := &userEntity.User{
			ID:           p.ID,
			Email:        p.Email,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			ProfileImage: p.ProfileImage,
		}
		if _, err := s.UserRepository.Upsert(ctx, u); err != nil {
			return apperr.Dependency("failed to reconcile user", err)
		}
		s.Logger.Info("user reconciled", zap.String("userID", p.ID), zap.String("event", eventType))
	case EventUserDeleted:
		if err := s.UserRepository.Delete(ctx, p.ID); err != nil {
			return apperr.Dependency("failed to delete user", err)
		}
		s.Logger.Info("user deleted", zap.String("userID", p.ID))
	default:
		s.Logger.Info("ignoring unrecognized provider event", zap.String("event", eventType))
	}
	return nil
}

// Ensure makes sure a local row exists for the caller before their first
// write. Lookup order matters: by ID first, then by email — the provider can
// hand an existing email a brand-new ID, and creating a second row would
// break the email uniqueness constraint. The check-then-create sequence is
// not transactional; concurrent first writes by the same user can race, which
// we accept as the reference behavior does.
func (s *UserService) Ensure(ctx context.Context, ident *identityPort.Identity) (*userEntity.User, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}

	existing, err := s.UserRepository.FindByID(ctx, ident.UserID)
	if err != nil {
		return nil, apperr.Dependency("failed to look up user", err)
	}
	if existing != nil {
		return existing, nil
	}

	byEmail, err := s.UserRepository.FindByEmail(ctx, ident.Email)
	if err != nil {
		return nil, apperr.Dependency("failed to look up user by email", err)
	}
	if byEmail != nil {
		s.Logger.Info("reusing user row with matching email",
			zap.String("userID", byEmail.ID), zap.String("sessionUserID", ident.UserID))
		return byEmail, nil
	}

	created, err := s.UserRepository.Create(ctx, &userEntity.User{
		ID:           ident.UserID,
		Email:        ident.Email,
		FirstName:    ident.FirstName,
		LastName:     ident.LastName,
		ProfileImage: ident.ProfileImage,
	})
	if err != nil {
		return nil, apperr.Dependency("failed to create user", err)
	}
	s.Logger.Info("user created lazily", zap.String("userID", created.ID))
	return created, nil
}

// Sync refreshes the local row from the current session's profile fields,
// creating it when absent.
func (s *UserService) Sync(ctx context.Context, ident *identityPort.Identity) (*userEntity.User, error) {
	if ident == nil {
		return nil, apperr.Unauthenticated("user not authenticated")
	}

	u, err := s.UserRepository.Upsert(ctx, &userEntity.User{
		ID:           ident.UserID,
		Email:        ident.Email,
		FirstName:    ident.FirstName,
		LastName:     ident.LastName,
		ProfileImage: ident.ProfileImage,
	})
	if err != nil {
		return nil, apperr.Dependency("failed to sync user", err)
	}
	return u, nil
}

// ToDTO converts a user row into its transport shape.
func ToDTO(u *userEntity.User) *userPort.UserDTO {
	if u == nil {
		return nil
	}
	return &userPort.UserDTO{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ProfileImage: u.ProfileImage,
	}
}
