package cli

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bloodbank/internal/common"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// demoAdminPassword is accepted when no password hash is configured.
const demoAdminPassword = "admin123"

// credentials is the single admin account the dashboard accepts.
type credentials struct {
	user string
	hash []byte
}

// newCredentials uses hash when given, otherwise derives one from the demo
// password.
func newCredentials(user, hash string) (credentials, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return credentials{}, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return credentials{user: user, hash: []byte(hash)}, nil
	}

	h, err := bcrypt.GenerateFromPassword([]byte(demoAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return credentials{}, fmt.Errorf("hash demo password: %w", err)
	}
	return credentials{user: user, hash: h}, nil
}

func (c credentials) check(user string, password []byte) error {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.user)) == 1
	passErr := bcrypt.CompareHashAndPassword(c.hash, password)
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login prompts for the admin user name and password. There is no session
// token; a successful login only unlocks the dashboard commands in this
// process.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.credentials.check(userName, password); err != nil {
		a.log.Warn(ctx, "admin login failed", "user", userName)
		fmt.Fprintln(a.out, "Login unsuccessful")
		return err
	}

	a.adminName = userName
	a.log.Info(ctx, "admin logged in", "user", userName)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout leaves admin mode.
func (a *App) Logout(ctx context.Context) error {
	if a.adminName != "" {
		a.log.Info(ctx, "admin logged out", "user", a.adminName)
	}
	a.adminName = ""
	return nil
}
