// Package credstore persists the last-used login credential per role
// namespace so login forms can be pre-filled. The store is plain text by
// contract; it only ever holds what the user already typed.
package credstore

import (
	"time"

	"fieldreport/persistence"

	"github.com/jinzhu/gorm"
)

const (
	RoleManager  = "manager"
	RoleEngineer = "engineer"
)

type Credential struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type StoredCredential struct {
	Role       string `gorm:"primary_key"`
	Username   string
	Password   string
	RememberMe bool
	UpdateTime time.Time
}

func (StoredCredential) TableName() string {
	return "stored_credentials"
}

var (
	SaveFunc  = Save
	LoadFunc  = Load
	ClearFunc = Clear
)

// Save persists the credential under the role namespace. A credential
// without rememberMe must not survive, so saving one clears the namespace
// instead.
func Save(role string, c Credential) error {
	if !c.RememberMe {
		return Clear(role)
	}

	db := persistence.ActiveDataSourceManager.GormDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&StoredCredential{}, "role = ?", role).Error; err != nil {
			return err
		}
		rec := StoredCredential{Role: role, Username: c.Username, Password: c.Password,
			RememberMe: true, UpdateTime: time.Now()}
		return tx.Create(&rec).Error
	})
}

// Load returns the last saved credential for the role, or ok=false when
// none was remembered.
func Load(role string) (Credential, bool, error) {
	db := persistence.ActiveDataSourceManager.GormDB()
	rec := StoredCredential{}
	if err := db.Where("role = ?", role).First(&rec).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return Credential{}, false, nil
		}
		return Credential{}, false, err
	}
	if !rec.RememberMe {
		return Credential{}, false, nil
	}
	return Credential{Username: rec.Username, Password: rec.Password, RememberMe: true}, true, nil
}

func Clear(role string) error {
	db := persistence.ActiveDataSourceManager.GormDB()
	return db.Delete(&StoredCredential{}, "role = ?", role).Error
}
