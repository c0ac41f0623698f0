// Package states carries the static fallback list of Indian states and union
// territories with their districts, used when the upstream location endpoints
// are unavailable, plus the per-state toll plaza density factors.
package states

import (
	"sort"
	"strings"

	"github.com/agriprofit/transport-compare/pkg/constants"
)

// districtsByState is the static fallback dataset.
var districtsByState = map[string][]string{
	"Andhra Pradesh":    {"Anantapur", "Chittoor", "East Godavari", "Guntur", "Krishna", "Kurnool", "Prakasam", "Srikakulam", "Sri Potti Sriramulu Nellore", "Visakhapatnam", "Vizianagaram", "West Godavari", "YSR Kadapa"},
	"Arunachal Pradesh": {"Changlang", "East Kameng", "East Siang", "Lower Subansiri", "Papum Pare", "Tawang", "Tirap", "West Kameng", "West Siang"},
	"Assam":             {"Barpeta", "Bongaigaon", "Cachar", "Darrang", "Dhemaji", "Dhubri", "Dibrugarh", "Goalpara", "Golaghat", "Jorhat", "Kamrup", "Karimganj", "Lakhimpur", "Nagaon", "Nalbari", "Sivasagar", "Sonitpur", "Tinsukia"},
	"Bihar":             {"Araria", "Aurangabad", "Begusarai", "Bhagalpur", "Bhojpur", "Darbhanga", "Gaya", "Katihar", "Madhubani", "Muzaffarpur", "Nalanda", "Patna", "Purnia", "Rohtas", "Samastipur", "Saran", "Sitamarhi", "Siwan", "Vaishali"},
	"Chhattisgarh":      {"Bastar", "Bilaspur", "Dhamtari", "Durg", "Janjgir-Champa", "Korba", "Mahasamund", "Raigarh", "Raipur", "Rajnandgaon", "Surguja"},
	"Goa":               {"North Goa", "South Goa"},
	"Gujarat":           {"Ahmedabad", "Amreli", "Anand", "Banaskantha", "Bharuch", "Bhavnagar", "Gandhinagar", "Jamnagar", "Junagadh", "Kheda", "Kutch", "Mehsana", "Panchmahal", "Patan", "Rajkot", "Sabarkantha", "Surat", "Surendranagar", "Vadodara", "Valsad"},
	"Haryana":           {"Ambala", "Bhiwani", "Faridabad", "Fatehabad", "Gurugram", "Hisar", "Jhajjar", "Jind", "Kaithal", "Karnal", "Kurukshetra", "Panipat", "Rewari", "Rohtak", "Sirsa", "Sonipat", "Yamunanagar"},
	"Himachal Pradesh":  {"Bilaspur", "Chamba", "Hamirpur", "Kangra", "Kinnaur", "Kullu", "Mandi", "Shimla", "Sirmaur", "Solan", "Una"},
	"Jharkhand":         {"Bokaro", "Deoghar", "Dhanbad", "Dumka", "East Singhbhum", "Garhwa", "Giridih", "Hazaribagh", "Palamu", "Ranchi", "West Singhbhum"},
	"Karnataka":         {"Bagalkot", "Ballari", "Belagavi", "Bengaluru Rural", "Bengaluru Urban", "Bidar", "Chikkamagaluru", "Chitradurga", "Dakshina Kannada", "Davanagere", "Dharwad", "Hassan", "Kalaburagi", "Kolar", "Mandya", "Mysuru", "Raichur", "Shivamogga", "Tumakuru", "Udupi", "Vijayapura"},
	"Kerala":            {"Alappuzha", "Ernakulam", "Idukki", "Kannur", "Kasaragod", "Kollam", "Kottayam", "Kozhikode", "Malappuram", "Palakkad", "Pathanamthitta", "Thiruvananthapuram", "Thrissur", "Wayanad"},
	"Madhya Pradesh":    {"Balaghat", "Betul", "Bhopal", "Chhindwara", "Dewas", "Dhar", "Gwalior", "Hoshangabad", "Indore", "Jabalpur", "Khandwa", "Khargone", "Mandsaur", "Morena", "Ratlam", "Rewa", "Sagar", "Satna", "Sehore", "Shivpuri", "Ujjain", "Vidisha"},
	"Maharashtra":       {"Ahmednagar", "Akola", "Amravati", "Aurangabad", "Beed", "Buldhana", "Chandrapur", "Dhule", "Jalgaon", "Jalna", "Kolhapur", "Latur", "Mumbai City", "Mumbai Suburban", "Nagpur", "Nanded", "Nashik", "Osmanabad", "Parbhani", "Pune", "Raigad", "Sangli", "Satara", "Solapur", "Thane", "Wardha", "Yavatmal"},
	"Manipur":           {"Bishnupur", "Churachandpur", "Imphal East", "Imphal West", "Senapati", "Thoubal", "Ukhrul"},
	"Meghalaya":         {"East Garo Hills", "East Khasi Hills", "Ri Bhoi", "West Garo Hills", "West Khasi Hills"},
	"Mizoram":           {"Aizawl", "Champhai", "Kolasib", "Lunglei", "Serchhip"},
	"Nagaland":          {"Dimapur", "Kohima", "Mokokchung", "Mon", "Tuensang", "Wokha"},
	"Odisha":            {"Angul", "Balasore", "Bargarh", "Bhadrak", "Bolangir", "Cuttack", "Dhenkanal", "Ganjam", "Kalahandi", "Kendrapara", "Keonjhar", "Khordha", "Koraput", "Mayurbhanj", "Puri", "Sambalpur", "Sundargarh"},
	"Punjab":            {"Amritsar", "Barnala", "Bathinda", "Faridkot", "Fatehgarh Sahib", "Fazilka", "Ferozepur", "Gurdaspur", "Hoshiarpur", "Jalandhar", "Kapurthala", "Ludhiana", "Mansa", "Moga", "Muktsar", "Pathankot", "Patiala", "Rupnagar", "Sangrur", "Tarn Taran"},
	"Rajasthan":         {"Ajmer", "Alwar", "Banswara", "Barmer", "Bharatpur", "Bhilwara", "Bikaner", "Bundi", "Chittorgarh", "Churu", "Dausa", "Ganganagar", "Hanumangarh", "Jaipur", "Jaisalmer", "Jhalawar", "Jhunjhunu", "Jodhpur", "Kota", "Nagaur", "Pali", "Sikar", "Tonk", "Udaipur"},
	"Sikkim":            {"East Sikkim", "North Sikkim", "South Sikkim", "West Sikkim"},
	"Tamil Nadu":        {"Chennai", "Coimbatore", "Cuddalore", "Dharmapuri", "Dindigul", "Erode", "Kanchipuram", "Kanyakumari", "Karur", "Madurai", "Nagapattinam", "Namakkal", "Salem", "Thanjavur", "Theni", "Thoothukudi", "Tiruchirappalli", "Tirunelveli", "Tiruppur", "Vellore", "Villupuram", "Virudhunagar"},
	"Telangana":         {"Adilabad", "Hyderabad", "Karimnagar", "Khammam", "Mahbubnagar", "Medak", "Nalgonda", "Nizamabad", "Rangareddy", "Warangal"},
	"Tripura":           {"Dhalai", "North Tripura", "South Tripura", "West Tripura"},
	"Uttar Pradesh":     {"Agra", "Aligarh", "Allahabad", "Azamgarh", "Bareilly", "Basti", "Bulandshahr", "Etawah", "Faizabad", "Firozabad", "Ghaziabad", "Gorakhpur", "Jhansi", "Kanpur Nagar", "Lucknow", "Mathura", "Meerut", "Mirzapur", "Moradabad", "Muzaffarnagar", "Saharanpur", "Shahjahanpur", "Sitapur", "Varanasi"},
	"Uttarakhand":       {"Almora", "Chamoli", "Dehradun", "Haridwar", "Nainital", "Pauri Garhwal", "Pithoragarh", "Tehri Garhwal", "Udham Singh Nagar", "Uttarkashi"},
	"West Bengal":       {"Bankura", "Birbhum", "Cooch Behar", "Darjeeling", "Hooghly", "Howrah", "Jalpaiguri", "Kolkata", "Malda", "Murshidabad", "Nadia", "North 24 Parganas", "Paschim Medinipur", "Purba Medinipur", "Purulia", "South 24 Parganas"},

	// Union territories
	"Andaman and Nicobar Islands": {"Nicobar", "North and Middle Andaman", "South Andaman"},
	"Chandigarh":                  {"Chandigarh"},
	"Dadra and Nagar Haveli and Daman and Diu": {"Dadra and Nagar Haveli", "Daman", "Diu"},
	"Delhi":             {"Central Delhi", "East Delhi", "New Delhi", "North Delhi", "North West Delhi", "South Delhi", "South West Delhi", "West Delhi"},
	"Jammu and Kashmir": {"Anantnag", "Baramulla", "Jammu", "Kathua", "Kupwara", "Pulwama", "Rajouri", "Srinagar", "Udhampur"},
	"Ladakh":            {"Kargil", "Leh"},
	"Lakshadweep":       {"Lakshadweep"},
	"Puducherry":        {"Karaikal", "Mahe", "Puducherry", "Yanam"},
}

// tollDensityFactors scales the estimated toll plaza count per state. States
// with denser national-highway networks carry more plazas per km.
var tollDensityFactors = map[string]float64{
	"Gujarat":        0.9,
	"Maharashtra":    0.85,
	"Uttar Pradesh":  0.85,
	"Haryana":        0.8,
	"Rajasthan":      0.8,
	"Tamil Nadu":     0.8,
	"Karnataka":      0.75,
	"Punjab":         0.75,
	"Andhra Pradesh": 0.75,
	"Madhya Pradesh": 0.7,
	"Telangana":      0.7,
	"Bihar":          0.65,
	"West Bengal":    0.65,
	"Odisha":         0.6,
	"Kerala":         0.6,
	"Chhattisgarh":   0.55,
	"Jharkhand":      0.55,
	"Delhi":          0.9,
}

// All returns the sorted list of states and union territories.
func All() []string {
	names := make([]string, 0, len(districtsByState))
	for name := range districtsByState {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Districts returns the district list for a state. The lookup is
// case-insensitive on the state name.
func Districts(state string) ([]string, bool) {
	if districts, ok := districtsByState[state]; ok {
		return append([]string(nil), districts...), true
	}
	for name, districts := range districtsByState {
		if strings.EqualFold(name, state) {
			return append([]string(nil), districts...), true
		}
	}
	return nil, false
}

// TollDensityFactor returns the toll plaza density factor for a state,
// falling back to the default for unknown states.
func TollDensityFactor(state string) float64 {
	if factor, ok := tollDensityFactors[state]; ok {
		return factor
	}
	for name, factor := range tollDensityFactors {
		if strings.EqualFold(name, state) {
			return factor
		}
	}
	return constants.DefaultTollDensityFactor
}
