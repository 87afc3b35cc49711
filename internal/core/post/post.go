package post

import (
	"time"

	"github.com/Mikielai/crudblog/internal/core/user"
	"github.com/gofrs/uuid"
)

// Post is visible to everyone while Published, and to its author only while
// not.
type Post struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title     string    `gorm:"size:255;not null"`
	Content   *string   `gorm:"type:text"`
	Image     *string   `gorm:"size:512"`
	Published bool      `gorm:"not null;default:true"`
	AuthorID  string    `gorm:"size:64;not null;index"`
	Author    user.User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
