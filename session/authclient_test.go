package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"fieldreport/bizerror"
	"fieldreport/config"
	"fieldreport/credstore"
	"fieldreport/session"

	. "github.com/onsi/gomega"
)

func bootstrapWith(engineerLoginURL string) {
	cfg := &config.Config{}
	cfg.Backend.EngineerLoginURL = engineerLoginURL
	cfg.Backend.ManagerLoginURL = engineerLoginURL
	session.Bootstrap(cfg)
}

func TestAuthenticate(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should classify a success response and send the form pair", func(t *testing.T) {
		var gotContentType, gotUsername, gotPassword string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			_ = r.ParseForm()
			gotUsername = r.PostFormValue("username")
			gotPassword = r.PostFormValue("password")
			_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
		}))
		defer server.Close()
		bootstrapWith(server.URL)

		result, err := session.Authenticate(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(result.Outcome).To(Equal(session.OutcomeSuccess))
		Expect(result.Role).To(Equal(session.RoleEngineer))
		Expect(gotContentType).To(Equal("application/x-www-form-urlencoded"))
		Expect(gotUsername).To(Equal("eng1"))
		Expect(gotPassword).To(Equal("pass1"))
	})

	t.Run("should classify a failed status as invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"failed","message":"Invalid username or password"}`))
		}))
		defer server.Close()
		bootstrapWith(server.URL)

		result, err := session.Authenticate(context.Background(), "eng1", "wrong", session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(result.Outcome).To(Equal(session.OutcomeInvalidCredentials))
	})

	t.Run("should classify the idempotent duplicate marker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success-Already CheckIN or CheckOut"}`))
		}))
		defer server.Close()
		bootstrapWith(server.URL)

		result, err := session.Authenticate(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(result.Outcome).To(Equal(session.OutcomeSuccessAlreadyProcessed))
	})

	t.Run("should surface a malformed response as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>502 Bad Gateway</html>`))
		}))
		defer server.Close()
		bootstrapWith(server.URL)

		result, err := session.Authenticate(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(result).To(BeNil())
		Expect(errors.Is(err, bizerror.ErrMalformedResponse)).To(BeTrue())
	})

	t.Run("should surface a transport failure as a network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()
		bootstrapWith(server.URL)

		result, err := session.Authenticate(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(result).To(BeNil())
		Expect(errors.Is(err, bizerror.ErrNetwork)).To(BeTrue())
	})
}

func TestLoginRememberMe(t *testing.T) {
	RegisterTestingT(t)

	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
	}))
	defer server.Close()
	bootstrapWith(server.URL)
	defer func() {
		session.AuthenticateFunc = session.Authenticate
		credstore.SaveFunc = credstore.Save
		credstore.ClearFunc = credstore.Clear
	}()

	t.Run("should save the credential after a successful login iff rememberMe", func(t *testing.T) {
		saved := map[string]credstore.Credential{}
		credstore.SaveFunc = func(role string, c credstore.Credential) error {
			saved[role] = c
			return nil
		}
		credstore.ClearFunc = func(role string) error {
			delete(saved, role)
			return nil
		}

		cred := credstore.Credential{Username: "eng1", Password: "pass1", RememberMe: true}
		result, err := session.Login(context.Background(), cred, session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(result.Outcome).To(Equal(session.OutcomeSuccess))
		Expect(saved["engineer"]).To(Equal(cred))

		// loading the pre-fill credential must not touch the network
		before := atomic.LoadInt32(&requests)
		Expect(saved["engineer"].Username).To(Equal("eng1"))
		Expect(atomic.LoadInt32(&requests)).To(Equal(before))

		cred.RememberMe = false
		result, err = session.Login(context.Background(), cred, session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(result.Outcome).To(Equal(session.OutcomeSuccess))
		_, ok := saved["engineer"]
		Expect(ok).To(BeFalse())
	})

	t.Run("should leave the store untouched on invalid credentials", func(t *testing.T) {
		session.AuthenticateFunc = func(ctx context.Context, username, password string, role session.Role) (*session.AuthResult, error) {
			return &session.AuthResult{Outcome: session.OutcomeInvalidCredentials, Role: role}, nil
		}
		touched := false
		credstore.SaveFunc = func(role string, c credstore.Credential) error {
			touched = true
			return nil
		}
		credstore.ClearFunc = func(role string) error {
			touched = true
			return nil
		}

		result, err := session.Login(context.Background(),
			credstore.Credential{Username: "eng1", Password: "bad", RememberMe: true}, session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(result.Outcome).To(Equal(session.OutcomeInvalidCredentials))
		Expect(touched).To(BeFalse())
	})
}
