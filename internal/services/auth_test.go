package services

import (
  "context"
  "testing"
  "time"

  "github.com/stretchr/testify/require"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/repos"
  "github.com/yungbote/idea-incubator/internal/requestdata"
  "github.com/yungbote/idea-incubator/internal/types"
)

func setupAuthTest(t *testing.T) AuthService {
  t.Helper()
  db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
  require.NoError(t, err)
  sqlDB, err := db.DB()
  require.NoError(t, err)
  sqlDB.SetMaxOpenConns(1)
  require.NoError(t, db.AutoMigrate(&types.User{}, &types.UserToken{}))

  log, err := logger.New("test")
  require.NoError(t, err)

  return NewAuthService(
    db,
    log,
    repos.NewUserRepo(db, log),
    repos.NewUserTokenRepo(db, log),
    "test-secret",
    time.Hour,
    24*time.Hour,
  )
}

func registerTestUser(t *testing.T, svc AuthService) *types.User {
  t.Helper()
  user := &types.User{
    Username: "founder",
    Email:    "founder@example.com",
    Password: "correct horse battery",
  }
  require.NoError(t, svc.RegisterUser(context.Background(), user))
  return user
}

func TestRegisterAndLogin(t *testing.T) {
  svc := setupAuthTest(t)
  user := registerTestUser(t, svc)
  require.Equal(t, types.RoleContributor, user.Role)
  require.NotEqual(t, "correct horse battery", user.Password, "password must be stored hashed")

  accessToken, refreshToken, err := svc.LoginUser(context.Background(), "founder", "correct horse battery")
  require.NoError(t, err)
  require.NotEmpty(t, accessToken)
  require.NotEmpty(t, refreshToken)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
  svc := setupAuthTest(t)
  registerTestUser(t, svc)

  dup := &types.User{Username: "founder", Email: "other@example.com", Password: "longenough"}
  require.Error(t, svc.RegisterUser(context.Background(), dup))

  dup = &types.User{Username: "other", Email: "founder@example.com", Password: "longenough"}
  require.Error(t, svc.RegisterUser(context.Background(), dup))
}

func TestRegisterRejectsWeakInput(t *testing.T) {
  svc := setupAuthTest(t)

  require.Error(t, svc.RegisterUser(context.Background(), &types.User{
    Username: "nopassword", Email: "a@example.com", Password: "short",
  }))
  require.Error(t, svc.RegisterUser(context.Background(), &types.User{
    Username: "noemail", Email: "not-an-email", Password: "longenough",
  }))
  require.Error(t, svc.RegisterUser(context.Background(), &types.User{
    Email: "nousername@example.com", Password: "longenough",
  }))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
  svc := setupAuthTest(t)
  registerTestUser(t, svc)

  _, _, err := svc.LoginUser(context.Background(), "founder", "wrong password")
  require.Error(t, err)

  _, _, err = svc.LoginUser(context.Background(), "nobody", "correct horse battery")
  require.Error(t, err)
}

func TestSetContextFromTokenPopulatesRequestData(t *testing.T) {
  svc := setupAuthTest(t)
  registerTestUser(t, svc)

  accessToken, refreshToken, err := svc.LoginUser(context.Background(), "founder", "correct horse battery")
  require.NoError(t, err)

  ctx, err := svc.SetContextFromToken(context.Background(), accessToken)
  require.NoError(t, err)
  rd := requestdata.GetRequestData(ctx)
  require.NotNil(t, rd)
  require.Equal(t, accessToken, rd.TokenString)
  require.Equal(t, refreshToken, rd.RefreshToken)
  require.Equal(t, types.RoleContributor, rd.Role)
}

func TestSetContextFromTokenRejectsGarbage(t *testing.T) {
  svc := setupAuthTest(t)
  _, err := svc.SetContextFromToken(context.Background(), "not-a-jwt")
  require.Error(t, err)
}

func TestRefreshRotatesTokens(t *testing.T) {
  svc := setupAuthTest(t)
  registerTestUser(t, svc)

  accessToken, _, err := svc.LoginUser(context.Background(), "founder", "correct horse battery")
  require.NoError(t, err)

  ctx, err := svc.SetContextFromToken(context.Background(), accessToken)
  require.NoError(t, err)

  newAccess, newRefresh, err := svc.RefreshUser(ctx)
  require.NoError(t, err)
  require.NotEmpty(t, newAccess)
  require.NotEmpty(t, newRefresh)

  // Old session is gone after rotation.
  _, err = svc.SetContextFromToken(context.Background(), accessToken)
  require.Error(t, err)

  _, err = svc.SetContextFromToken(context.Background(), newAccess)
  require.NoError(t, err)
}

func TestLogoutRemovesSession(t *testing.T) {
  svc := setupAuthTest(t)
  registerTestUser(t, svc)

  accessToken, _, err := svc.LoginUser(context.Background(), "founder", "correct horse battery")
  require.NoError(t, err)

  ctx, err := svc.SetContextFromToken(context.Background(), accessToken)
  require.NoError(t, err)
  require.NoError(t, svc.LogoutUser(ctx))

  _, err = svc.SetContextFromToken(context.Background(), accessToken)
  require.Error(t, err)
}
