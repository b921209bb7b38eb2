package reference

import "profile_validator/internal/domain/entity"

// WeakPasswords are matched as case-insensitive substrings.
//
//nolint:gochecknoglobals
var WeakPasswords = []string{
	"password", "password1", "123456", "123456789", "qwerty", "abc123",
	"password123", "admin", "letmein", "welcome", "monkey", "1234567890",
	"iloveyou", "princess", "rockyou", "1234567", "12345678", "password12",
	"qwerty123", "1q2w3e4r", "baseball", "football", "soccer", "hockey",
	"basketball", "tennis", "golf", "swimming", "volleyball", "rugby",
}

// Sequences are scanned for 3-character runs.
//
//nolint:gochecknoglobals
var Sequences = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"zyxwvutsrqponmlkjihgfedcba",
	"0123456789",
	"9876543210",
}

//nolint:gochecknoglobals
var passwordStrengths = [...]entity.Strength{
	{Text: "None", Color: "#666666"},
	{Text: "Very Weak", Color: "#ff4757"},
	{Text: "Weak", Color: "#ff4757"},
	{Text: "Poor", Color: "#ff6348"},
	{Text: "Fair", Color: "#ffa726"},
	{Text: "Moderate", Color: "#ffa726"},
	{Text: "Good", Color: "#2ed573"},
	{Text: "Strong", Color: "#2ed573"},
	{Text: "Very Strong", Color: "#3742fa"},
	{Text: "Excellent", Color: "#3742fa"},
	{Text: "Fortress", Color: "#9c88ff"},
}

// PasswordStrength maps a 0-10 tier to its label. Out of range tiers map to
// tier 0.
func PasswordStrength(tier int) entity.Strength {
	if tier < 0 || tier >= len(passwordStrengths) {
		return passwordStrengths[0]
	}

	return passwordStrengths[tier]
}
