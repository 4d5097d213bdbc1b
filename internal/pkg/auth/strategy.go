package auth

import (
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// Session is the decoded identity carried by a token: who the caller is
// and which role they act under. It replaces any notion of ambient
// auth state; every request decodes its own session.
type Session struct {
	UserID int64
	Role   model.Role
}

type Strategy interface {
	IssueToken(session Session) (string, error)
	ParseToken(token string) (Session, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
