// Package session authenticates a technician or manager against the
// remote backend. One call, one outcome; nothing is retried.
package session

import (
	"context"
	"net/url"
	"sync/atomic"

	"fieldreport/bizerror"
	"fieldreport/common"
	"fieldreport/config"
	"fieldreport/credstore"
	"fieldreport/envelope"
)

type Role string

const (
	RoleManager  Role = credstore.RoleManager
	RoleEngineer Role = credstore.RoleEngineer
)

type Outcome string

const (
	OutcomeSuccess                 Outcome = "success"
	OutcomeSuccessAlreadyProcessed Outcome = "success-already-processed"
	OutcomeInvalidCredentials      Outcome = "invalid-credentials"
)

type AuthResult struct {
	Outcome    Outcome
	Role       Role
	RawPayload string
}

var (
	loginURLs = map[Role]string{}

	// inFlight mirrors the disabled submit control: at most one
	// authentication request runs at a time.
	inFlight int32

	AuthenticateFunc = Authenticate
)

func Bootstrap(cfg *config.Config) {
	loginURLs = map[Role]string{
		RoleManager:  cfg.Backend.ManagerLoginURL,
		RoleEngineer: cfg.Backend.EngineerLoginURL,
	}
}

// Authenticate posts the pair form-urlencoded and classifies the response.
// A malformed body or transport failure surfaces as an error; a parseable
// non-success status is an InvalidCredentials outcome.
func Authenticate(ctx context.Context, username, password string, role Role) (*AuthResult, error) {
	if !atomic.CompareAndSwapInt32(&inFlight, 0, 1) {
		return nil, bizerror.ErrSubmissionInFlight
	}
	defer atomic.StoreInt32(&inFlight, 0)

	endpoint := loginURLs[role]
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	body, err := common.PostForm(ctx, endpoint, form)
	if err != nil {
		common.Log.Warnf("authentication transport failure for role %s: %v", role, err)
		return nil, bizerror.WrapNetwork(err)
	}

	e, err := envelope.Parse(body)
	if err != nil {
		return nil, err
	}

	result := &AuthResult{Role: role, RawPayload: body}
	switch {
	case e.IsAlreadyProcessed():
		result.Outcome = OutcomeSuccessAlreadyProcessed
	case e.IsSuccess():
		result.Outcome = OutcomeSuccess
	default:
		result.Outcome = OutcomeInvalidCredentials
	}
	return result, nil
}

// Login authenticates and applies the remember-me policy: a successful
// login saves the credential when rememberMe is set and clears the role
// namespace when it is not. Failed logins leave the store untouched so
// the form stays populated for re-entry.
func Login(ctx context.Context, cred credstore.Credential, role Role) (*AuthResult, error) {
	result, err := AuthenticateFunc(ctx, cred.Username, cred.Password, role)
	if err != nil {
		return nil, err
	}
	if result.Outcome == OutcomeInvalidCredentials {
		return result, nil
	}

	if cred.RememberMe {
		if err := credstore.SaveFunc(string(role), cred); err != nil {
			common.Log.Warnf("failed to save remembered credential: %v", err)
		}
	} else {
		if err := credstore.ClearFunc(string(role)); err != nil {
			common.Log.Warnf("failed to clear remembered credential: %v", err)
		}
	}
	return result, nil
}
