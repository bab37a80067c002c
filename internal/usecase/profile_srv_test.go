package usecase

import (
	"context"
	"strings"
	"testing"

	"sreca-account/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8080"

func strPtr(s string) *string { return &s }

func TestGetProfileCreatesLazily(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("Amina", "amina@example.com", "supersecret")
	svc := env.profileService()

	resp, err := svc.GetProfile(context.Background(), user.ID, testBaseURL)
	require.NoError(t, err)

	// Empty profile falls back to the user's display name
	require.Equal(t, "Amina", resp.FullName)
	require.Equal(t, "amina@example.com", resp.Email)
	require.Equal(t, "", resp.DateOfBirth)
	require.Nil(t, resp.ProfileImage)

	// The row now exists; a second read reuses it
	require.Len(t, env.profiles.profiles, 1)
	_, err = svc.GetProfile(context.Background(), user.ID, testBaseURL)
	require.NoError(t, err)
	require.Len(t, env.profiles.profiles, 1)
}

func TestGetProfileUnknownUser(t *testing.T) {
	env := newTestEnv()
	svc := env.profileService()

	_, err := svc.GetProfile(context.Background(), uuid.New(), testBaseURL)
	require.EqualError(t, err, "User not found")
}

func TestUpdateProfileRejectsForeignUser(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser("Amina", "amina@example.com", "supersecret")
	intruder := env.seedUser("Mallory", "mallory@example.com", "supersecret")
	svc := env.profileService()

	_, err := svc.UpdateProfile(context.Background(), intruder.ID, &request.ProfileUpdateRequest{
		UserID:   owner.ID.String(),
		FullName: strPtr("Hijacked"),
	}, testBaseURL)
	require.EqualError(t, err, "You are not authorized to update this profile")

	// Nothing was written
	require.Empty(t, env.profiles.profiles)
	require.Equal(t, "Amina", env.users.users[owner.ID].Name)
}

func TestUpdateProfileInvalidUserID(t *testing.T) {
	env := newTestEnv()
	svc := env.profileService()

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &request.ProfileUpdateRequest{
		UserID: "not-a-uuid",
	}, testBaseURL)
	require.EqualError(t, err, "Invalid user ID")
}

func TestUpdateProfilePresentVsAbsentFields(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("Amina", "amina@example.com", "supersecret")
	svc := env.profileService()
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, user.ID, &request.ProfileUpdateRequest{
		UserID: user.ID.String(),
		City:   strPtr("Sarajevo"),
		Phone:  strPtr("061123456"),
	}, testBaseURL)
	require.NoError(t, err)

	// Absent fields leave stored values alone; a present empty string clears
	resp, err := svc.UpdateProfile(ctx, user.ID, &request.ProfileUpdateRequest{
		UserID: user.ID.String(),
		Phone:  strPtr(""),
	}, testBaseURL)
	require.NoError(t, err)
	require.Equal(t, "Sarajevo", resp.City)
	require.Equal(t, "", resp.Phone)
}

func TestUpdateProfileDateOfBirthRoundTrip(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("Amina", "amina@example.com", "supersecret")
	svc := env.profileService()

	resp, err := svc.UpdateProfile(context.Background(), user.ID, &request.ProfileUpdateRequest{
		UserID:      user.ID.String(),
		DateOfBirth: strPtr("1990-05-10"),
	}, testBaseURL)
	require.NoError(t, err)
	require.Equal(t, "1990-05-10", resp.DateOfBirth)
}

func TestUpdateProfileIgnoresUnparseableDate(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("Amina", "amina@example.com", "supersecret")
	svc := env.profileService()
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, user.ID, &request.ProfileUpdateRequest{
		UserID:      user.ID.String(),
		DateOfBirth: strPtr("1990-05-10"),
	}, testBaseURL)
	require.NoError(t, err)

	resp, err := svc.UpdateProfile(ctx, user.ID, &request.ProfileUpdateRequest{
		UserID:      user.ID.String(),
		DateOfBirth: strPtr("10/05/1990"),
	}, testBaseURL)
	require.NoError(t, err)
	require.Equal(t, "1990-05-10", resp.DateOfBirth)
}

func TestUpdateProfilePropagatesFullName(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("Amina", "amina@example.com", "supersecret")
	svc := env.profileService()

	_, err := svc.UpdateProfile(context.Background(), user.ID, &request.ProfileUpdateRequest{
		UserID:   user.ID.String(),
		FullName: strPtr("Amina Hodzic"),
	}, testBaseURL)
	require.NoError(t, err)

	require.Equal(t, "Amina Hodzic", env.users.users[user.ID].Name)
	require.Equal(t, "Amina Hodzic", env.profiles.profiles[user.ID].FullName)
}

func TestUpdateProfileEmptyFullNameDoesNotTouchUser(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("Amina", "amina@example.com", "supersecret")
	svc := env.profileService()

	_, err := svc.UpdateProfile(context.Background(), user.ID, &request.ProfileUpdateRequest{
		UserID:   user.ID.String(),
		FullName: strPtr(""),
	}, testBaseURL)
	require.NoError(t, err)

	require.Equal(t, "Amina", env.users.users[user.ID].Name)
	require.Equal(t, "", env.profiles.profiles[user.ID].FullName)
}

func TestUpdateProfileStoresImage(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("Amina", "amina@example.com", "supersecret")
	env.store.path = "profile_images/abc123.png"
	svc := env.profileService()

	resp, err := svc.UpdateProfile(context.Background(), user.ID, &request.ProfileUpdateRequest{
		UserID:    user.ID.String(),
		Image:     strings.NewReader("fake image bytes"),
		ImageName: "avatar.png",
	}, testBaseURL)
	require.NoError(t, err)

	require.Equal(t, []string{"avatar.png"}, env.store.saved)
	require.NotNil(t, resp.ProfileImage)
	require.Equal(t, testBaseURL+"/media/profile_images/abc123.png", *resp.ProfileImage)
}
