package payload

import (
	"recipebox/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a RegisterRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a RegisterRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: a.Username,
		Password: a.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a LoginRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a LoginRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: a.Username,
		Password: a.Password,
	}
}
