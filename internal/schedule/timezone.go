package schedule

import "strings"

// Airports, stations and ports share one namespace; where a code is used by
// more than one mode it is in the same city.
var placeTimezones = map[string]string{
	// WIB (UTC+7)
	"CGK": "WIB", // Jakarta - Soekarno-Hatta
	"SUB": "WIB", // Surabaya - Juanda
	"BDO": "WIB", // Bandung - Husein Sastranegara
	"MDN": "WIB", // Medan
	"PLM": "WIB", // Palembang
	"SOC": "WIB", // Solo - Adisumarmo
	"MLG": "WIB", // Malang
	"GMR": "WIB", // Gambir
	"PSE": "WIB", // Pasar Senen
	"SGU": "WIB", // Surabaya Gubeng
	"YK":  "WIB", // Yogyakarta
	"BD":  "WIB", // Bandung
	"SLO": "WIB", // Solo Balapan
	"SMG": "WIB", // Semarang Tawang
	"PWK": "WIB", // Purwokerto
	"KA":  "WIB", // Karawang
	"TNJ": "WIB", // Tanjung Priok
	"SBY": "WIB", // Tanjung Perak
	"BTM": "WIB", // Batam
	"PLB": "WIB", // Palembang (Boom Baru)

	// WITA (UTC+8)
	"DPS": "WITA", // Bali - Ngurah Rai / Benoa
	"BPN": "WITA", // Balikpapan
	"UPG": "WITA", // Makassar - Sultan Hasanuddin
	"MKS": "WITA", // Makassar - Soekarno-Hatta port

	// WIT (UTC+9)
	"AMB": "WIT", // Ambon
	"JYP": "WIT", // Jayapura
}

func TimezoneOf(code string) string {
	if tz, ok := placeTimezones[strings.ToUpper(code)]; ok {
		return tz
	}
	return "WIB"
}
