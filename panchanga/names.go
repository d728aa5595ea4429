package panchanga

// Name tables for the Vedic time units. Indexing is 1-based through the
// lookup helpers; out-of-range numbers return the empty string rather
// than panicking, since ids ultimately come from stored data.

var tithiNames = [30]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
}

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati",
	"Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// The first seven karanas repeat eight times per lunation; the last four
// are fixed, each occurring exactly once.
var karanaNames = [11]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara",
	"Vanija", "Vishti",
	"Shakuni", "Chatushpada", "Naga", "Kimstughna",
}

var maasNames = [12]string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha", "Shravana",
	"Bhadrapada", "Ashwina", "Kartika", "Margashirsha", "Pausha",
	"Magha", "Phalguna",
}

// Sidereal signs; sankranti ids use the sign the Sun enters.
var rashiNames = [12]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

// TithiName returns the name of tithi n (1..30).
func TithiName(n int) string {
	if n < 1 || n > 30 {
		return ""
	}
	return tithiNames[n-1]
}

// NakshatraName returns the name of nakshatra n (1..27).
func NakshatraName(n int) string {
	if n < 1 || n > 27 {
		return ""
	}
	return nakshatraNames[n-1]
}

// YogaName returns the name of yoga n (1..27).
func YogaName(n int) string {
	if n < 1 || n > 27 {
		return ""
	}
	return yogaNames[n-1]
}

// KaranaName returns the name of karana n (1..11).
func KaranaName(n int) string {
	if n < 1 || n > 11 {
		return ""
	}
	return karanaNames[n-1]
}

// MaasName returns the name of lunar month n (1..12).
func MaasName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return maasNames[n-1]
}

// IngressName returns the sankranti name for target sign n (1..12),
// e.g. 10 -> "Makara Sankranti".
func IngressName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return rashiNames[n-1] + " Sankranti"
}
