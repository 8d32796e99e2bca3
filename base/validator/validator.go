package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// New builds the struct validator used on create/make request structs.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("eth_addr_lower", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return v
}

type StructValidator struct {
	validator *validator.Validate
}

func NewStructValidator() *StructValidator {
	return &StructValidator{New()}
}

func (v *StructValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
