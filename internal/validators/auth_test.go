package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-id-wallet/models"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "9876543210", want: "9876543210"},
		{name: "formatted", input: "(987) 654-3210", want: "9876543210"},
		{name: "spaces", input: " 98765 43210 ", want: "9876543210"},
		{name: "nine digits", input: "987654321", wantErr: true},
		{name: "prefixed", input: "+91 98765 43210", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "no digits", input: "abcdefghij", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateOTP(t *testing.T) {
	assert.NoError(t, ValidateOTP("123456"))
	assert.ErrorIs(t, ValidateOTP("12345"), ErrInvalidOTP)
	assert.ErrorIs(t, ValidateOTP("1234567"), ErrInvalidOTP)
	assert.ErrorIs(t, ValidateOTP("12a456"), ErrInvalidOTP)
	assert.ErrorIs(t, ValidateOTP("١٢٣٤٥٦"), ErrInvalidOTP)
}

func TestValidatePIN(t *testing.T) {
	assert.NoError(t, ValidatePIN("0000"))
	assert.ErrorIs(t, ValidatePIN("123"), ErrInvalidPIN)
	assert.ErrorIs(t, ValidatePIN("12345"), ErrInvalidPIN)
	assert.ErrorIs(t, ValidatePIN("12 4"), ErrInvalidPIN)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret"))
	assert.NoError(t, ValidatePassword("пароль"))
	assert.ErrorIs(t, ValidatePassword("short"), ErrInvalidPassword)
}

func TestSignupValidator(t *testing.T) {
	v := NewSignupValidator()
	ctx := context.Background()
	valid := models.SignupRequest{Phone: "9876543210", Password: "secret1", PIN: "1234"}

	assert.NoError(t, v.Validate(ctx, valid))
	assert.NoError(t, v.Validate(ctx, &valid))

	bad := valid
	bad.Phone = "123"
	bad.PIN = "1"
	// phone is checked first
	assert.ErrorIs(t, v.Validate(ctx, bad), ErrInvalidPhone)
	assert.ErrorIs(t, v.Validate(ctx, bad, FieldPIN), ErrInvalidPIN)
	assert.NoError(t, v.Validate(ctx, bad, FieldPassword))

	assert.ErrorIs(t, v.Validate(ctx, valid, "email"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, "nope"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.SignupRequest)(nil)), ErrUnsupportedType)
}
