package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"profile_validator/internal/domain/service/scoring"
)

func TestEmail(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		input    string
		score    int
		valid    bool
		errors   []string
		warnings []string
	}{
		{
			name:     "Legitimate provider",
			input:    "john.doe@gmail.com",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			name:     "Subdomain of legitimate provider",
			input:    "jane@mail.yahoo.co.uk",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			// first label "a" is too short to look like a business domain
			name:     "Short local part and unknown domain",
			input:    "a@a.co",
			score:    10,
			valid:    true,
			errors:   []string{},
			warnings: []string{"Unknown email provider", "Email username is very short"},
		},
		{
			name:     "Academic domain counts as legitimate",
			input:    "student@mit.edu",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			name:     "Cambodian university counts as legitimate",
			input:    "dara@rupp.edu.kh",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			name:     "UK academic domain",
			input:    "bob@ox.ac.uk",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			// "edu" only matches as a suffix, edu.com is an ordinary domain
			name:     "Academic label inside a business domain",
			input:    "info@edu.com",
			score:    16,
			valid:    true,
			errors:   []string{},
			warnings: []string{"Custom/business domain"},
		},
		{
			name:     "Business domain upper case",
			input:    " JOHN@Company.io ",
			score:    16,
			valid:    true,
			errors:   []string{},
			warnings: []string{"Custom/business domain"},
		},
		{
			name:   "Disposable test address",
			input:  "test@mailinator.com",
			score:  10,
			valid:  true,
			errors: []string{},
			warnings: []string{
				"Disposable/temporary email detected",
				"Custom/business domain",
				"Email appears to be a test/temporary address",
			},
		},
		{
			name:     "Empty",
			input:    "",
			score:    0,
			valid:    false,
			errors:   []string{"Email is required"},
			warnings: []string{},
		},
		{
			name:     "Missing dot in domain",
			input:    "john@localhost",
			score:    0,
			valid:    false,
			errors:   []string{"Invalid email format"},
			warnings: []string{},
		},
		{
			name:     "Embedded whitespace",
			input:    "john doe@gmail.com",
			score:    0,
			valid:    false,
			errors:   []string{"Invalid email format"},
			warnings: []string{},
		},
		{
			name:     "Two at signs",
			input:    "a@b@gmail.com",
			score:    0,
			valid:    false,
			errors:   []string{"Invalid email format"},
			warnings: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := scoring.Email(tc.input)

			rq.Equal(tc.score, r.Score)
			rq.Equal(tc.valid, r.Valid)
			rq.Equal(tc.errors, r.Errors)
			rq.Equal(tc.warnings, r.Warnings)
		})
	}
}

func TestEmailDetails(t *testing.T) {
	rq := require.New(t)

	r := scoring.Email("John.Doe@Gmail.com")

	rq.Equal("john.doe", r.Details["localPart"])
	rq.Equal("gmail.com", r.Details["domain"])
	rq.Equal("com", r.Details["tld"])
	rq.Equal(true, r.Details["isLegitProvider"])
	rq.Equal(false, r.Details["isEducational"])
	rq.Equal(true, r.Details["isBusinessDomain"])
	rq.Equal(false, r.Details["isDisposable"])

	r = scoring.Email("alice@stanford.edu")
	rq.Equal(true, r.Details["isLegitProvider"])
	rq.Equal(true, r.Details["isEducational"])
	rq.Empty(r.Warnings)

	r = scoring.Email("hr@jobs.example.co.uk")
	rq.Equal("example.co.uk", r.Details["registrableDomain"])
}
