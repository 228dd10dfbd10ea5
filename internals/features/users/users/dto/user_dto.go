// file: internals/features/users/users/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "tutorhub_backend/internals/features/users/users/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateUserRequest struct {
	Username string `json:"user_username" validate:"required,min=2,max=80"`
	Email    string `json:"user_email" validate:"required,email,max=255"`
	Mobile   string `json:"user_mobile" validate:"required,len=10,numeric"`
	Whatsapp *string `json:"user_whatsapp" validate:"omitempty,len=10,numeric"`

	Address  *string `json:"user_address"`
	Landmark *string `json:"user_landmark"`
	Pincode  *string `json:"user_pincode" validate:"omitempty,len=6,numeric"`

	Password string `json:"user_password" validate:"required,min=8,max=72"`

	Role        string    `json:"user_role" validate:"required,oneof=student trainer admin"`
	JoiningDate time.Time `json:"user_joining_date" validate:"required"`

	ParentMobile   *string `json:"user_parent_mobile" validate:"omitempty,len=10,numeric"`
	ParentWhatsapp *string `json:"user_parent_whatsapp" validate:"omitempty,len=10,numeric"`
	ParentEmail    *string `json:"user_parent_email" validate:"omitempty,email"`

	TrainerProfile datatypes.JSONMap `json:"user_trainer_profile"`
}

func (r *CreateUserRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Mobile = strings.TrimSpace(r.Mobile)
	trimPtr(&r.Whatsapp)
	trimPtr(&r.Address)
	trimPtr(&r.Landmark)
	trimPtr(&r.Pincode)
	trimPtr(&r.ParentMobile)
	trimPtr(&r.ParentWhatsapp)
	trimPtr(&r.ParentEmail)
}

// ToModel leaves the password empty; the controller stores the bcrypt hash.
func (r CreateUserRequest) ToModel() m.User {
	return m.User{
		UserUsername:       r.Username,
		UserEmail:          r.Email,
		UserMobile:         r.Mobile,
		UserWhatsapp:       r.Whatsapp,
		UserAddress:        r.Address,
		UserLandmark:       r.Landmark,
		UserPincode:        r.Pincode,
		UserRole:           m.UserRole(r.Role),
		UserJoiningDate:    r.JoiningDate,
		UserParentMobile:   r.ParentMobile,
		UserParentWhatsapp: r.ParentWhatsapp,
		UserParentEmail:    r.ParentEmail,
		UserTrainerProfile: r.TrainerProfile,
	}
}

/* =========================================================
   UPDATE — pointer fields, absent means unchanged
   ========================================================= */

type UpdateUserRequest struct {
	Username *string `json:"user_username" validate:"omitempty,min=2,max=80"`
	Email    *string `json:"user_email" validate:"omitempty,email,max=255"`
	Mobile   *string `json:"user_mobile" validate:"omitempty,len=10,numeric"`
	Whatsapp *string `json:"user_whatsapp" validate:"omitempty,len=10,numeric"`

	Address  *string `json:"user_address"`
	Landmark *string `json:"user_landmark"`
	Pincode  *string `json:"user_pincode" validate:"omitempty,len=6,numeric"`

	Status *string `json:"user_status" validate:"omitempty,oneof=active inactive"`

	ParentMobile   *string `json:"user_parent_mobile" validate:"omitempty,len=10,numeric"`
	ParentWhatsapp *string `json:"user_parent_whatsapp" validate:"omitempty,len=10,numeric"`
	ParentEmail    *string `json:"user_parent_email" validate:"omitempty,email"`

	TrainerProfile datatypes.JSONMap `json:"user_trainer_profile"`
}

// Apply copies the present fields onto the model.
func (r UpdateUserRequest) Apply(u *m.User) {
	if r.Username != nil {
		u.UserUsername = strings.TrimSpace(*r.Username)
	}
	if r.Email != nil {
		u.UserEmail = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Mobile != nil {
		u.UserMobile = strings.TrimSpace(*r.Mobile)
	}
	if r.Whatsapp != nil {
		u.UserWhatsapp = r.Whatsapp
	}
	if r.Address != nil {
		u.UserAddress = r.Address
	}
	if r.Landmark != nil {
		u.UserLandmark = r.Landmark
	}
	if r.Pincode != nil {
		u.UserPincode = r.Pincode
	}
	if r.Status != nil {
		u.UserStatus = *r.Status
	}
	if r.ParentMobile != nil {
		u.UserParentMobile = r.ParentMobile
	}
	if r.ParentWhatsapp != nil {
		u.UserParentWhatsapp = r.ParentWhatsapp
	}
	if r.ParentEmail != nil {
		u.UserParentEmail = r.ParentEmail
	}
	if r.TrainerProfile != nil {
		u.UserTrainerProfile = r.TrainerProfile
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"user_username"`
	Email    string    `json:"user_email"`
	Mobile   string    `json:"user_mobile"`
	Whatsapp *string   `json:"user_whatsapp,omitempty"`

	Address  *string `json:"user_address,omitempty"`
	Landmark *string `json:"user_landmark,omitempty"`
	Pincode  *string `json:"user_pincode,omitempty"`

	Role        string    `json:"user_role"`
	Status      string    `json:"user_status"`
	JoiningDate time.Time `json:"user_joining_date"`

	ParentMobile   *string `json:"user_parent_mobile,omitempty"`
	ParentWhatsapp *string `json:"user_parent_whatsapp,omitempty"`
	ParentEmail    *string `json:"user_parent_email,omitempty"`

	TrainerProfile datatypes.JSONMap `json:"user_trainer_profile,omitempty"`

	CreatedAt time.Time `json:"user_created_at"`
	UpdatedAt time.Time `json:"user_updated_at"`
}

func FromUserModel(u m.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Username:       u.UserUsername,
		Email:          u.UserEmail,
		Mobile:         u.UserMobile,
		Whatsapp:       u.UserWhatsapp,
		Address:        u.UserAddress,
		Landmark:       u.UserLandmark,
		Pincode:        u.UserPincode,
		Role:           string(u.UserRole),
		Status:         u.UserStatus,
		JoiningDate:    u.UserJoiningDate,
		ParentMobile:   u.UserParentMobile,
		ParentWhatsapp: u.UserParentWhatsapp,
		ParentEmail:    u.UserParentEmail,
		TrainerProfile: u.UserTrainerProfile,
		CreatedAt:      u.UserCreatedAt,
		UpdatedAt:      u.UserUpdatedAt,
	}
}

func FromUserModels(models []m.User) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for _, u := range models {
		out = append(out, FromUserModel(u))
	}
	return out
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
