package doctor

import (
	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/domain/user"
)

// Card is the public doctor representation shown in the directory listing.
type Card struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Specialization *string   `json:"specialization"`
	Experience     *int      `json:"experience"`
	Rating         *float64  `json:"rating"`
	Available      bool      `json:"available"`
}

// Profile adds the bio shown on the doctor detail page.
type Profile struct {
	Card
	Bio *string `json:"bio"`
}

func cardOf(u *user.User) Card {
	return Card{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Phone:          u.Phone,
		Specialization: u.Specialization,
		Experience:     u.Experience,
		Rating:         u.Rating,
		Available:      u.Available,
	}
}

func profileOf(u *user.User) Profile {
	return Profile{Card: cardOf(u), Bio: u.Bio}
}
