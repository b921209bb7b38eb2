package reference

// LegitimateEmailProviders are matched by exact domain or subdomain. Entries
// without a dot are matched as a suffix only.
//
//nolint:gochecknoglobals
var LegitimateEmailProviders = []string{
	// global
	"gmail.com", "googlemail.com", "yahoo.com", "yahoo.co.uk", "yahoo.fr", "yahoo.de",
	"outlook.com", "hotmail.com", "live.com", "msn.com", "hotmail.co.uk",
	"icloud.com", "me.com", "mac.com",
	"protonmail.com", "proton.me", "pm.me",
	"aol.com", "mail.com", "zoho.com", "yandex.com", "yandex.ru",
	"gmx.com", "gmx.net", "gmx.de",
	// professional
	"fastmail.com", "tutanota.com", "hey.com",
	// regional
	"qq.com", "163.com", "126.com", "sina.com", "naver.com", "daum.net",
	// academic, a dotless entry only matches as a suffix
	"edu", "ac.uk", "edu.au", "edu.kh",
}

// EducationalSuffixes are domain suffixes of academic institutions.
//
//nolint:gochecknoglobals
var EducationalSuffixes = []string{".edu", ".ac.uk", ".edu.au", ".edu.kh"}

//nolint:gochecknoglobals
var DisposableEmailProviders = []string{
	"tempmail.com", "throwaway.com", "guerrillamail.com", "mailinator.com",
	"10minutemail.com", "temp-mail.org", "fakeinbox.com", "trashmail.com",
	"yopmail.com", "getnada.com", "maildrop.cc", "dispostable.com",
}
