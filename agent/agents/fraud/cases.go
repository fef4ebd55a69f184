package fraud

import (
	catalogx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/catalog"
)

// Case is one pending fraud review. Key is the customer's lowercase first
// name, which is what callers actually say on the phone. Status and
// OutcomeNote are the only fields mutated after load.
type Case struct {
	Key                string
	CaseID             string
	CustomerName       string
	SecurityIdentifier string
	MaskedCard         string
	TransactionAmount  string
	MerchantName       string
	Location           string
	Timestamp          string
	SecurityQuestion   string
	SecurityAnswer     string
	Status             string
	OutcomeNote        string
}

const statusPendingReview = "pending_review"

// seedCases is the mock review queue loaded once at worker start.
var seedCases = []Case{
	{
		Key:                "shadow",
		CaseID:             "FRD-9876",
		CustomerName:       "Shadow",
		SecurityIdentifier: "ID-421A",
		MaskedCard:         "**** 9012",
		TransactionAmount:  "452.99",
		MerchantName:       "ElectroGadget Inc.",
		Location:           "New Delhi, India",
		Timestamp:          "Nov 26, 2025, 2:30 PM IST",
		SecurityQuestion:   "What city were you born in?",
		SecurityAnswer:     "surat",
		Status:             statusPendingReview,
	},
	{
		Key:                "luna",
		CaseID:             "FRD-1024",
		CustomerName:       "Luna",
		SecurityIdentifier: "ID-555B",
		MaskedCard:         "**** 4321",
		TransactionAmount:  "1,200.00",
		MerchantName:       "SkyTravel Agency",
		Location:           "New York, USA",
		Timestamp:          "Nov 26, 2025, 8:00 AM EST",
		SecurityQuestion:   "What is the name of your first pet?",
		SecurityAnswer:     "mittens",
		Status:             statusPendingReview,
	},
	{
		Key:                "ravi",
		CaseID:             "FRD-7777",
		CustomerName:       "Ravi Sharma",
		SecurityIdentifier: "ID-300C",
		MaskedCard:         "**** 6789",
		TransactionAmount:  "150.50",
		MerchantName:       "Local Grocery Store",
		Location:           "Mumbai, India",
		Timestamp:          "Nov 25, 2025, 7:15 PM IST",
		SecurityQuestion:   "What is the last four digits of your registered phone number?",
		SecurityAnswer:     "5432",
		Status:             statusPendingReview,
	},
	{
		Key:                "gambit",
		CaseID:             "FRD-3333",
		CustomerName:       "Gambit LeBeau",
		SecurityIdentifier: "ID-123G",
		MaskedCard:         "**** 2222",
		TransactionAmount:  "250.00",
		MerchantName:       "Rare Card Emporium",
		Location:           "New Orleans, USA",
		Timestamp:          "Nov 26, 2025, 1:00 PM CST",
		SecurityQuestion:   "What is your favorite color?",
		SecurityAnswer:     "black",
		Status:             statusPendingReview,
	},
	{
		Key:                "dark",
		CaseID:             "FRD-4444",
		CustomerName:       "Dark Schneider",
		SecurityIdentifier: "ID-456D",
		MaskedCard:         "**** 1111",
		TransactionAmount:  "8000.00",
		MerchantName:       "Magical Artifacts Ltd.",
		Location:           "Tokyo, Japan",
		Timestamp:          "Nov 26, 2025, 10:00 AM JST",
		SecurityQuestion:   "What is your birth month?",
		SecurityAnswer:     "august",
		Status:             statusPendingReview,
	},
	{
		Key:                "naruto",
		CaseID:             "FRD-5555",
		CustomerName:       "Naruto Uzumaki",
		SecurityIdentifier: "ID-789N",
		MaskedCard:         "**** 5555",
		TransactionAmount:  "14.99",
		MerchantName:       "Ramen Shop Konoha",
		Location:           "Los Angeles, USA",
		Timestamp:          "Nov 26, 2025, 9:00 PM PST",
		SecurityQuestion:   "What is your favorite food?",
		SecurityAnswer:     "ramen",
		Status:             statusPendingReview,
	},
	{
		Key:                "jinwoo",
		CaseID:             "FRD-6666",
		CustomerName:       "Jinwoo Sung",
		SecurityIdentifier: "ID-012J",
		MaskedCard:         "**** 6666",
		TransactionAmount:  "5000.00",
		MerchantName:       "Hunter Association Gear",
		Location:           "Seoul, South Korea",
		Timestamp:          "Nov 26, 2025, 3:30 PM KST",
		SecurityQuestion:   "What is your rank?",
		SecurityAnswer:     "s",
		Status:             statusPendingReview,
	},
	{
		Key:                "rimaru",
		CaseID:             "FRD-7778",
		CustomerName:       "Rimaru Tempest",
		SecurityIdentifier: "ID-345R",
		MaskedCard:         "**** 7777",
		TransactionAmount:  "1500.00",
		MerchantName:       "Slime Labs Research",
		Location:           "Singapore",
		Timestamp:          "Nov 26, 2025, 5:00 PM SGT",
		SecurityQuestion:   "What is your original name?",
		SecurityAnswer:     "satoru",
		Status:             statusPendingReview,
	},
	{
		Key:                "noir",
		CaseID:             "FRD-8888",
		CustomerName:       "Noir",
		SecurityIdentifier: "ID-678N",
		MaskedCard:         "**** 8888",
		TransactionAmount:  "100.00",
		MerchantName:       "Assassin's Guild Supplies",
		Location:           "London, UK",
		Timestamp:          "Nov 26, 2025, 11:00 AM GMT",
		SecurityQuestion:   "What is the last four digits of your social security number?",
		SecurityAnswer:     "9876",
		Status:             statusPendingReview,
	},
	{
		Key:                "diablo",
		CaseID:             "FRD-9999",
		CustomerName:       "Diablo",
		SecurityIdentifier: "ID-901D",
		MaskedCard:         "**** 9999",
		TransactionAmount:  "666.00",
		MerchantName:       "Demonic Investments Corp",
		Location:           "Frankfurt, Germany",
		Timestamp:          "Nov 26, 2025, 2:00 PM CET",
		SecurityQuestion:   "What is your true title?",
		SecurityAnswer:     "demon",
		Status:             statusPendingReview,
	},
	{
		Key:                "luffy",
		CaseID:             "FRD-1111",
		CustomerName:       "Monkey D. Luffy",
		SecurityIdentifier: "ID-234L",
		MaskedCard:         "**** 1010",
		TransactionAmount:  "10.00",
		MerchantName:       "Meat Market Paradise",
		Location:           "Paris, France",
		Timestamp:          "Nov 26, 2025, 1:30 PM CET",
		SecurityQuestion:   "What is your main goal?",
		SecurityAnswer:     "pirate king",
		Status:             statusPendingReview,
	},
	{
		Key:                "goku",
		CaseID:             "FRD-2222",
		CustomerName:       "Son Goku",
		SecurityIdentifier: "ID-567G",
		MaskedCard:         "**** 2020",
		TransactionAmount:  "20.00",
		MerchantName:       "World Martial Arts",
		Location:           "Toronto, Canada",
		Timestamp:          "Nov 26, 2025, 4:00 PM EST",
		SecurityQuestion:   "What is your first martial arts teacher's name?",
		SecurityAnswer:     "roshi",
		Status:             statusPendingReview,
	},
	{
		Key:                "ichigo",
		CaseID:             "FRD-3334",
		CustomerName:       "Ichigo Kurosaki",
		SecurityIdentifier: "ID-890I",
		MaskedCard:         "**** 3030",
		TransactionAmount:  "300.00",
		MerchantName:       "Soul Society Gear",
		Location:           "New York, USA",
		Timestamp:          "Nov 26, 2025, 12:00 PM EST",
		SecurityQuestion:   "What is your favorite drink?",
		SecurityAnswer:     "orange soda",
		Status:             statusPendingReview,
	},
	{
		Key:                "asta",
		CaseID:             "FRD-4445",
		CustomerName:       "Asta",
		SecurityIdentifier: "ID-112A",
		MaskedCard:         "**** 4040",
		TransactionAmount:  "5.00",
		MerchantName:       "Clovers General Store",
		Location:           "Milan, Italy",
		Timestamp:          "Nov 26, 2025, 10:00 AM CET",
		SecurityQuestion:   "What is the color of your cloak?",
		SecurityAnswer:     "black",
		Status:             statusPendingReview,
	},
	{
		Key:                "isagi",
		CaseID:             "FRD-5556",
		CustomerName:       "Yoichi Isagi",
		SecurityIdentifier: "ID-334Y",
		MaskedCard:         "**** 5050",
		TransactionAmount:  "50.00",
		MerchantName:       "Blue Lock Football",
		Location:           "Berlin, Germany",
		Timestamp:          "Nov 26, 2025, 3:00 PM CET",
		SecurityQuestion:   "What is your primary weapon?",
		SecurityAnswer:     "ego",
		Status:             statusPendingReview,
	},
	{
		Key:                "hinata",
		CaseID:             "FRD-6060",
		CustomerName:       "Hinata Hyuga",
		SecurityIdentifier: "ID-6060H",
		MaskedCard:         "**** 6060",
		TransactionAmount:  "55.00",
		MerchantName:       "Ninja Tool Shop",
		Location:           "Konoha, Japan",
		Timestamp:          "Nov 26, 2025, 6:00 AM JST",
		SecurityQuestion:   "What is your clan symbol?",
		SecurityAnswer:     "byakugan",
		Status:             statusPendingReview,
	},
	{
		Key:                "shinobu",
		CaseID:             "FRD-7070",
		CustomerName:       "Shinobu Kocho",
		SecurityIdentifier: "ID-7070S",
		MaskedCard:         "**** 7070",
		TransactionAmount:  "150.00",
		MerchantName:       "Wisteria Pharmaceuticals",
		Location:           "Kyoto, Japan",
		Timestamp:          "Nov 26, 2025, 1:00 PM JST",
		SecurityQuestion:   "What color is your hair?",
		SecurityAnswer:     "black",
		Status:             statusPendingReview,
	},
	{
		Key:                "mitsuri",
		CaseID:             "FRD-8080",
		CustomerName:       "Mitsuri Kanroji",
		SecurityIdentifier: "ID-8080M",
		MaskedCard:         "**** 8080",
		TransactionAmount:  "25.00",
		MerchantName:       "Sweets and Tea House",
		Location:           "Paris, France",
		Timestamp:          "Nov 26, 2025, 4:00 PM CET",
		SecurityQuestion:   "What is your favorite food?",
		SecurityAnswer:     "sakura mochi",
		Status:             statusPendingReview,
	},
	{
		Key:                "makima",
		CaseID:             "FRD-9090",
		CustomerName:       "Makima",
		SecurityIdentifier: "ID-9090K",
		MaskedCard:         "**** 9090",
		TransactionAmount:  "900.00",
		MerchantName:       "Public Safety HQ",
		Location:           "Berlin, Germany",
		Timestamp:          "Nov 26, 2025, 11:00 AM CET",
		SecurityQuestion:   "What is your true identity?",
		SecurityAnswer:     "control devil",
		Status:             statusPendingReview,
	},
	{
		Key:                "mikasa",
		CaseID:             "FRD-1313",
		CustomerName:       "Mikasa Ackerman",
		SecurityIdentifier: "ID-1313A",
		MaskedCard:         "**** 1313",
		TransactionAmount:  "300.00",
		MerchantName:       "ODM Gear Maintenance",
		Location:           "London, UK",
		Timestamp:          "Nov 26, 2025, 9:00 AM GMT",
		SecurityQuestion:   "What is the color of your scarf?",
		SecurityAnswer:     "red",
		Status:             statusPendingReview,
	},
}

// NewCaseCatalog loads the pending review queue.
func NewCaseCatalog() *catalogx.Catalog[Case] {
	return catalogx.MustNew(seedCases, func(c Case) string { return c.Key })
}
