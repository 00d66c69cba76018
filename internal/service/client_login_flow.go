package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-id-wallet/internal/validators"
	"github.com/MKhiriev/go-id-wallet/models"
)

// LoginStep is a state of the login wizard.
type LoginStep int

const (
	StepPhoneEntry LoginStep = iota
	StepOTPPending
	StepPINEntry
	StepAuthenticated
)

func (s LoginStep) String() string {
	switch s {
	case StepPhoneEntry:
		return "phone"
	case StepOTPPending:
		return "otp"
	case StepPINEntry:
		return "pin"
	case StepAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("LoginStep(%d)", int(s))
	}
}

// LoginFlow walks PhoneEntry → OTPPending → PINEntry → Authenticated.
//
// A failed submit never advances the wizard. A LoginFlow is driven by one
// goroutine at a time.
type LoginFlow struct {
	auth *clientAuthService

	step    LoginStep
	phone   string
	session models.OTPSession
}

func (f *LoginFlow) Step() LoginStep {
	return f.step
}

// Phone is the normalised 10-digit phone once SubmitPhone succeeded.
func (f *LoginFlow) Phone() string {
	return f.phone
}

// Session is the OTP session issued by SubmitPhone.
func (f *LoginFlow) Session() models.OTPSession {
	return f.session
}

// SubmitPhone validates raw and requests a code.
func (f *LoginFlow) SubmitPhone(ctx context.Context, raw string) error {
	if f.step != StepPhoneEntry {
		return fmt.Errorf("%w: %s", ErrStepNotAllowed, f.step)
	}

	phone, err := validators.NormalizePhone(raw)
	if err != nil {
		return err
	}

	session, err := f.auth.otp.SendOTP(ctx, phone)
	if err != nil {
		return err
	}

	f.phone = phone
	f.session = session
	f.step = StepOTPPending
	return nil
}

// SubmitOTP validates code locally and only then asks for verification.
func (f *LoginFlow) SubmitOTP(ctx context.Context, code string) error {
	if f.step != StepOTPPending {
		return fmt.Errorf("%w: %s", ErrStepNotAllowed, f.step)
	}
	if err := validators.ValidateOTP(code); err != nil {
		return err
	}

	if err := f.auth.otp.VerifyOTP(ctx, f.session.SessionID, code); err != nil {
		return err
	}

	f.step = StepPINEntry
	return nil
}

// SubmitPIN checks pin for the verified phone. On a mismatch the wizard stays
// at PINEntry.
func (f *LoginFlow) SubmitPIN(ctx context.Context, pin string) error {
	if f.step != StepPINEntry {
		return fmt.Errorf("%w: %s", ErrStepNotAllowed, f.step)
	}
	if err := validators.ValidatePIN(pin); err != nil {
		return err
	}

	if err := f.auth.VerifyPIN(ctx, f.phone, pin); err != nil {
		return err
	}
	if err := f.auth.signIn(ctx, f.phone); err != nil {
		return err
	}

	f.step = StepAuthenticated
	return nil
}

// Back returns to the previous step. Going back to PhoneEntry forgets the
// issued session.
func (f *LoginFlow) Back() {
	switch f.step {
	case StepOTPPending:
		f.session = models.OTPSession{}
		f.step = StepPhoneEntry
	case StepPINEntry:
		f.step = StepOTPPending
	}
}
