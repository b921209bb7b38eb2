package reference

const (
	CountryCode     = "855"
	CarrierUnknown  = "Unknown"
	CarrierNotApply = "N/A"
)

//nolint:gochecknoglobals
var MobilePrefixes = set(
	"10", "11", "12", "13", "14", "15", "16", "17", "18", "19",
	"31", "60", "66", "67", "68", "69", "70", "71", "76", "77", "78", "79",
	"80", "81", "82", "83", "84", "85", "86", "87", "88", "89",
	"90", "91", "92", "93", "94", "95", "96", "97", "98", "99",
)

//nolint:gochecknoglobals
var LandlinePrefixes = set(
	"23", "24", "25", "26", "32", "33", "34", "35", "36",
	"42", "43", "44", "52", "53", "54", "62", "63", "72", "73", "74", "75",
)

//nolint:gochecknoglobals
var Carriers = map[string]string{
	"10": "Cootel", "11": "Cootel",

	"12": "Cellcard", "14": "Cellcard", "17": "Cellcard", "77": "Cellcard", "78": "Cellcard",
	"79": "Cellcard", "89": "Cellcard", "92": "Cellcard", "95": "Cellcard",

	"15": "Metfone", "16": "Metfone", "31": "Metfone", "60": "Metfone", "66": "Metfone",
	"67": "Metfone", "68": "Metfone", "71": "Metfone", "88": "Metfone", "90": "Metfone",
	"97": "Metfone",

	"13": "Smart", "18": "Smart", "69": "Smart", "70": "Smart", "80": "Smart", "81": "Smart",
	"82": "Smart", "83": "Smart", "84": "Smart", "85": "Smart", "86": "Smart", "87": "Smart",
	"93": "Smart", "96": "Smart", "98": "Smart",

	"19": "Seatel", "76": "Seatel",

	"38": "qb", "39": "qb",
}

// Carrier returns the operator for a two-digit prefix or CarrierUnknown.
func Carrier(prefix string) string {
	if c, ok := Carriers[prefix]; ok {
		return c
	}

	return CarrierUnknown
}

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, item := range items {
		m[item] = struct{}{}
	}

	return m
}
