// Package devserver emulates the remote backend for local development and
// tests: the same endpoints, form contracts, response envelopes and quirks,
// backed by a relational store.
package devserver

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/fundwit/go-commons/types"
)

type User struct {
	ID     types.ID `gorm:"primary_key"`
	Name   string   `gorm:"unique_index:uni_user_name"`
	Secret string
	Role   string
}

// Complaint is one assigned service record. CheckState tracks whether the
// item was already checked in or out; the second submission hits the
// idempotent-duplicate path.
type Complaint struct {
	ID               types.ID `gorm:"primary_key"`
	ServNo           string   `gorm:"unique_index:uni_complaint_servno"`
	ClientName       string
	Address          string
	SystemName       string
	TaskType         string
	AssignedEngineer string
	AssignDate       string
	Remark           string
	Status           string
	ReportedAt       string

	CheckState    string
	PendingReason string
}

type PendingReason struct {
	ID     types.ID `gorm:"primary_key"`
	Reason string
}

const CheckStateDone = "done"

func Models() []interface{} {
	return []interface{}{&User{}, &Complaint{}, &PendingReason{}}
}

func HashSha256(raw string) string {
	h := sha256.New()
	h.Write([]byte(raw))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}
