package httpx

import (
	"context"

	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
	"github.com/campusapps/studentdir/internal/domain/model"
	"github.com/campusapps/studentdir/internal/service"
)

// stubSessionService is a scriptable SessionService for handler tests.
type stubSessionService struct {
	snapshot    domainauth.Snapshot
	signInErr   error
	signUpErr   error
	signOutErr  error
	signInCalls int
	signUpCalls int
	lastSignUp  service.SignUpInput
}

func (s *stubSessionService) Current() domainauth.Snapshot { return s.snapshot }

func (s *stubSessionService) SignIn(_ context.Context, _, _ string) error {
	s.signInCalls++
	return s.signInErr
}

func (s *stubSessionService) SignUp(_ context.Context, in service.SignUpInput) error {
	s.signUpCalls++
	s.lastSignUp = in
	return s.signUpErr
}

func (s *stubSessionService) SignOut(context.Context) error { return s.signOutErr }

func signedOutSession() *stubSessionService {
	return &stubSessionService{snapshot: domainauth.Snapshot{Resolving: false}}
}

func signedInSession(userID, email string) *stubSessionService {
	return &stubSessionService{snapshot: domainauth.Snapshot{
		Identity: &domainauth.Identity{UserID: userID, Email: email},
	}}
}

func resolvingSession() *stubSessionService {
	return &stubSessionService{snapshot: domainauth.Snapshot{Resolving: true}}
}

// stubDirectory is a scriptable DirectoryReader for handler tests.
type stubDirectory struct {
	listing    *service.DirectoryListing
	listErr    error
	profile    *model.StudentProfile
	profileErr error
}

func (d *stubDirectory) ListStudents(context.Context) (*service.DirectoryListing, error) {
	if d.listErr != nil {
		return nil, d.listErr
	}
	if d.listing != nil {
		return d.listing, nil
	}
	return &service.DirectoryListing{Students: []service.DirectoryEntry{}}, nil
}

func (d *stubDirectory) GetProfile(context.Context, string) (*model.StudentProfile, error) {
	if d.profileErr != nil {
		return nil, d.profileErr
	}
	return d.profile, nil
}
