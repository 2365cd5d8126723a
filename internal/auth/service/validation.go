package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type signUpValidation struct {
	Name     string `validate:"required,min=1,max=64"`
	Email    string `validate:"required,email,max=255"`
	Profile  string `validate:"max=500"`
	Password string `validate:"required,min=8,max=72"`
}

var validate = validator.New()

func validateSignUp(input SignUpInput) error {
	err := validate.Struct(signUpValidation{
		Name:     input.Name,
		Email:    input.Email,
		Profile:  input.Profile,
		Password: input.Password,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ErrValidationName.WithCause(err)
	}

	// Report the first failing field only.
	switch fieldErrs[0].Field() {
	case "Email":
		return ErrValidationEmail
	case "Profile":
		return ErrValidationProfile
	case "Password":
		return ErrValidationPassword
	default:
		return ErrValidationName
	}
}

func validateLogin(input LoginInput) error {
	if input.Email == "" || input.Password == "" {
		return ErrInvalidCredentials
	}
	return nil
}
