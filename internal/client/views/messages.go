package views

// Fixed user-facing messages. Error details go to the log only.
const (
	MsgPasswordMismatch   = "Passwords do not match."
	MsgRegistrationFailed = "Registration failed. Please try again."
	MsgInvalidToken       = "Invalid or expired token."
	MsgNotSignedIn        = "You are not signed in."
	MsgSignInFailed       = "Sign-in failed. Please check your email and password."
	MsgLoadFailed         = "Could not load contacts. Please try again."
	MsgSaveFailed         = "Could not save the contact. Please try again."
	MsgDeleteFailed       = "Could not delete the contact. Please try again."
	MsgNotFound           = "Contact not found."
)
