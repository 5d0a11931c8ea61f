package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/mp_hub/models/enums"
)

type validatedForm struct {
	Color    string             `validate:"omitempty,HexColor"`
	CardType enums.CardType     `validate:"omitempty,CardType"`
	Statuses []enums.CardStatus `validate:"dive,CardStatus"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, registerValidations(v))
	return v
}

func TestHexColor(t *testing.T) {
	v := newValidator(t)

	for _, c := range []string{"", "#FF0000", "#f00", "#173177"} {
		assert.NoError(t, v.Struct(validatedForm{Color: c}), c)
	}
	for _, c := range []string{"FF0000", "#GG0000", "#FF00", "red"} {
		assert.Error(t, v.Struct(validatedForm{Color: c}), c)
	}
}

func TestCardTypeAndStatus(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(validatedForm{CardType: enums.CardMemberCard}))
	assert.Error(t, v.Struct(validatedForm{CardType: "VIP"}))

	assert.NoError(t, v.Struct(validatedForm{Statuses: []enums.CardStatus{enums.CardStatusVerifyOK}}))
	assert.Error(t, v.Struct(validatedForm{Statuses: []enums.CardStatus{"CARD_STATUS_X"}}))
}
