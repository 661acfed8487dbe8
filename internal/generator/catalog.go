package generator

import "github.com/dharmasatrya/travelnesia/internal/models"

var airlines = []models.Carrier{
	{Code: "GA", Name: "Garuda Indonesia", Logo: "🛫"},
	{Code: "JT", Name: "Lion Air", Logo: "🦁"},
	{Code: "SJ", Name: "Sriwijaya Air", Logo: "🛩️"},
	{Code: "QG", Name: "Citilink", Logo: "✈️"},
	{Code: "ID", Name: "Batik Air", Logo: "🎨"},
	{Code: "QZ", Name: "Indonesia AirAsia", Logo: "🔴"},
}

var airportNames = map[string]string{
	"CGK": "Jakarta",
	"SUB": "Surabaya",
	"DPS": "Denpasar",
	"BDO": "Bandung",
	"MDN": "Medan",
	"PLM": "Palembang",
	"BPN": "Balikpapan",
	"UPG": "Makassar",
	"SOC": "Solo",
	"MLG": "Malang",
}

type hotelChain struct {
	Name  string
	Types []string
	Stars []int
}

var hotelChains = []hotelChain{
	{Name: "Aston", Types: []string{"Hotel", "Inn", "Resort"}, Stars: []int{3, 4, 5}},
	{Name: "Swiss-Belhotel", Types: []string{"Hotel", "Resort"}, Stars: []int{4, 5}},
	{Name: "Novotel", Types: []string{"Hotel", "Resort"}, Stars: []int{4, 5}},
	{Name: "Mercure", Types: []string{"Hotel"}, Stars: []int{4}},
	{Name: "Hotel Santika", Types: []string{"Hotel", "Premiere"}, Stars: []int{3, 4}},
	{Name: "Grand Zuri", Types: []string{"Hotel"}, Stars: []int{3, 4}},
	{Name: "MaxOneHotels", Types: []string{"Hotel"}, Stars: []int{3}},
	{Name: "Favehotel", Types: []string{"Hotel"}, Stars: []int{3}},
}

var cityAreas = map[string][]string{
	"jakarta":    {"Menteng", "Sudirman", "Kuningan", "Kemang", "Senayan"},
	"surabaya":   {"Tunjungan", "Gubeng", "Darmo", "Wiyung", "Pakuwon"},
	"bali":       {"Seminyak", "Kuta", "Sanur", "Ubud", "Nusa Dua"},
	"bandung":    {"Dago", "Pasteur", "Setiabudhi", "Cihampelas", "Braga"},
	"yogyakarta": {"Malioboro", "Prawirotaman", "Jalan Solo", "UGM", "Kraton"},
}

var defaultAreas = []string{"Pusat Kota", "Bisnis", "Wisata"}

var hotelImages = []string{
	"https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
	"https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
	"https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg",
	"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg",
	"https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg",
	"https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg",
	"https://images.pexels.com/photos/271639/pexels-photo-271639.jpeg",
	"https://images.pexels.com/photos/279746/pexels-photo-279746.jpeg",
}

func hotelAmenities(star int) []string {
	amenities := []string{"WiFi Gratis", "AC", "TV", "Kamar Mandi Pribadi"}
	if star >= 4 {
		amenities = append(amenities, "Sarapan", "Kolam Renang", "Restoran", "Layanan Kamar")
	}
	if star >= 5 {
		amenities = append(amenities, "Spa", "Fitness Center", "Concierge", "Business Center")
	}
	return amenities
}

type trainService struct {
	models.Carrier
	Type string
}

var trainServices = []trainService{
	{Carrier: models.Carrier{Code: "ARGO", Name: "Argo Bromo Anggrek", Logo: "🚄"}, Type: "argo"},
	{Carrier: models.Carrier{Code: "GAJAYANA", Name: "Gajayana", Logo: "🚅"}, Type: "gajayana"},
	{Carrier: models.Carrier{Code: "TAKSAKA", Name: "Taksaka", Logo: "🚆"}, Type: "taksaka"},
	{Carrier: models.Carrier{Code: "LODAYA", Name: "Lodaya", Logo: "🚇"}, Type: "lodaya"},
	{Carrier: models.Carrier{Code: "BIMA", Name: "Bima", Logo: "🚈"}, Type: "bima"},
	{Carrier: models.Carrier{Code: "SANCAKA", Name: "Sancaka", Logo: "🚉"}, Type: "sancaka"},
}

var stationNames = map[string]string{
	"GMR": "Gambir (Jakarta)",
	"PSE": "Pasar Senen (Jakarta)",
	"SGU": "Surabaya Gubeng",
	"YK":  "Yogyakarta",
	"BD":  "Bandung",
	"SLO": "Solo Balapan",
	"SMG": "Semarang Tawang",
	"MLG": "Malang",
	"PWK": "Purwokerto",
	"KA":  "Karawang",
}

func trainFacilities(trainType, class string) []string {
	facilities := []string{"AC", "Toilet"}
	switch class {
	case "eksekutif":
		facilities = append(facilities, "WiFi", "Makan", "Reclining Seat")
	case "bisnis":
		facilities = append(facilities, "WiFi", "Snack")
	}
	if trainType == "argo" || trainType == "gajayana" {
		facilities = append(facilities, "Premium Service")
	}
	return facilities
}

type shipLine struct {
	models.Carrier
	Vessels []string
}

var shipLines = []shipLine{
	{Carrier: models.Carrier{Code: "PELNI", Name: "PELNI", Logo: "🚢"}, Vessels: []string{"KM Bukit Raya", "KM Kelud", "KM Lambelu"}},
	{Carrier: models.Carrier{Code: "ASDP", Name: "ASDP", Logo: "⛴️"}, Vessels: []string{"KMP Portlink I", "KMP Portlink II", "KMP Jokowi"}},
	{Carrier: models.Carrier{Code: "DLU", Name: "Dharma Lautan Utama", Logo: "🛳️"}, Vessels: []string{"KM Marina", "KM Oceania", "KM Pacifica"}},
	{Carrier: models.Carrier{Code: "TANTO", Name: "Tanto Intim Line", Logo: "🚤"}, Vessels: []string{"KM Express Bahari", "KM Tanto Prima", "KM Nusantara"}},
}

var portNames = map[string]string{
	"TNJ": "Tanjung Priok (Jakarta)",
	"SBY": "Surabaya",
	"BPN": "Balikpapan",
	"DPS": "Benoa (Bali)",
	"MDN": "Belawan (Medan)",
	"MKS": "Makassar",
	"AMB": "Ambon",
	"JYP": "Jayapura",
	"BTM": "Batam",
	"PLB": "Palembang",
}

func shipFacilities(class string) []string {
	facilities := []string{"Kamar Mandi", "Musholla", "Kantin"}
	switch class {
	case "vip":
		facilities = append(facilities, "AC", "TV", "Kamar Pribadi", "WiFi")
	case "kelas1":
		facilities = append(facilities, "AC", "TV", "Tempat Tidur")
	case "kelas2":
		facilities = append(facilities, "Kipas Angin", "Tempat Tidur")
	}
	return facilities
}
