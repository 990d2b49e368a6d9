package utils

import (
  "context"
  "fmt"
  "strings"
  "golang.org/x/crypto/bcrypt"
  "github.com/yungbote/idea-incubator/internal/normalization"
  "github.com/yungbote/idea-incubator/internal/logger"
  "github.com/yungbote/idea-incubator/internal/types"
  "github.com/yungbote/idea-incubator/internal/repos"
)

func InputValidation(ctx context.Context, ffor string, userRepo repos.UserRepo, log *logger.Logger, user *types.User, username, password string) error {
  validatedFor := normalization.ParseInputString(ffor)
  if validatedFor == "" {
    return fmt.Errorf("For string is nil, needs to be login or registration")
  }
  switch validatedFor {
  case "registration":
    if err := handleRegisterInputValidation(ctx, userRepo, log, user); err != nil {
      return err
    }
  case "login":
    if err := handleLoginInputValidation(ctx, log, username, password); err != nil {
      return err
    }
  }
  return nil
}

func handleRegisterInputValidation(ctx context.Context, userRepo repos.UserRepo, log *logger.Logger, user *types.User) error {
  if user == nil {
    return fmt.Errorf("No user given, cannot proceed with registration")
  }
  if user.Username == "" {
    return fmt.Errorf("A username is required to register")
  }
  if user.Email == "" || !strings.Contains(user.Email, "@") {
    return fmt.Errorf("A valid email is required to register")
  }
  if len(user.Password) < 8 {
    return fmt.Errorf("A password of at least 8 characters is required to register")
  }
  exists, err := userRepo.UsernameOrEmailExists(ctx, nil, user.Username, user.Email)
  if err != nil {
    return fmt.Errorf("Failed to check username and email")
  }
  if exists {
    return fmt.Errorf("Username or email is already in use")
  }
  return nil
}

func handleLoginInputValidation(ctx context.Context, log *logger.Logger, username, password string) error {
  if username == "" {
    return fmt.Errorf("Username is required to login")
  }
  if password == "" {
    return fmt.Errorf("Password is required to login")
  }
  return nil
}

func HashPassword(ctx context.Context, log *logger.Logger, user *types.User) error {
  hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
  if err != nil {
    return fmt.Errorf("Failed to hash password")
  }
  user.Password = string(hashedPassword)
  return nil
}

func NormalizeUserFields(ctx context.Context, user *types.User) {
  user.Username = normalization.ParseInputString(user.Username)
  user.Email = normalization.ParseInputString(user.Email)
  user.Password = normalization.TrimInputString(user.Password)
}
