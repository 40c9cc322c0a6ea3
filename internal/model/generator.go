package model

import "github.com/foxypassword/foxypassword-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
// Classes, when present, names the enabled classes and overrides the flags.
type GenerateRequest struct {
	Length    int      `json:"length"`
	Uppercase *bool    `json:"uppercase"`
	Lowercase *bool    `json:"lowercase"`
	Numbers   *bool    `json:"numbers"`
	Symbols   *bool    `json:"symbols"`
	Classes   []string `json:"classes"`
	Count     int      `json:"count"`
}

// GeneratedPassword is one generated password with its strength label.
type GeneratedPassword struct {
	Password string          `json:"password"`
	Strength crypto.Strength `json:"strength"`
}

// GenerateResponse represents a password generation response.
// Password mirrors the first entry for single-password clients.
type GenerateResponse struct {
	Password  string              `json:"password"`
	Passwords []GeneratedPassword `json:"passwords"`
	Length    int                 `json:"length"`
}

// EvaluateRequest carries a password to rate.
type EvaluateRequest struct {
	Password string `json:"password"`
}

// EvaluateResponse is the advisory rating of a password.
type EvaluateResponse struct {
	Strength crypto.Strength         `json:"strength"`
	Length   int                     `json:"length"`
	Classes  []crypto.CharacterClass `json:"classes"`
	Meter    crypto.Meter            `json:"meter"`
}
