package categorize

import "finsight/ledger-insights/internal/models"

// DefaultRules is the built-in keyword table. Order is priority: earlier
// rules shadow later ones, so Entertainment claims "netflix" even though
// Subscriptions lists it too. The table can be replaced wholesale from a
// YAML rules file.
func DefaultRules() []models.CategoryRule {
	return []models.CategoryRule{
		{Name: models.CategoryEntertainment, Keywords: []string{
			"movie", "cinema", "netflix", "spotify", "game", "entertainment",
			"streaming", "music", "theater", "theatre", "ticket", "concert", "show",
		}},
		{Name: models.CategoryFood, Keywords: []string{
			"restaurant", "food", "cafe", "grocery", "supermarket", "dining",
			"lunch", "dinner", "breakfast", "zomato", "swiggy", "pizza", "burger",
			"mcdonalds", "dominos", "kfc", "starbucks", "ubereats",
		}},
		{Name: models.CategoryTravel, Keywords: []string{
			"flight", "hotel", "travel", "trip", "booking", "train", "airline",
			"airport", "railway", "makemytrip", "goibibo", "yatra",
		}},
		{Name: models.CategoryUtilities, Keywords: []string{
			"electricity", "water", "internet", "phone", "utility", "bill",
			"bsnl", "airtel", "jio", "vodafone", "mobile", "broadband",
			"municipal", "corporation",
		}},
		{Name: models.CategoryEducation, Keywords: []string{
			"school", "university", "course", "education", "tuition", "textbook",
			"college", "institute", "coaching", "exam", "admission",
		}},
		{Name: models.CategoryHealthcare, Keywords: []string{
			"hospital", "doctor", "pharmacy", "medical", "health", "medicine",
			"clinic", "apollo", "medplus", "diagnostic", "pharma",
		}},
		{Name: models.CategoryShopping, Keywords: []string{
			"amazon", "flipkart", "shopping", "store", "mall", "purchase",
			"myntra", "nykaa", "snapdeal", "ajio", "meesho",
		}},
		{Name: models.CategorySavings, Keywords: []string{
			"savings", "deposit", "investment", "fixed deposit", "fd",
			"recurring deposit", "mutual fund", "sip", "insurance", "ppf", "epf",
			"zerodha", "groww", "upstox", "stock", "trading", "broker",
		}},
		{Name: models.CategorySubscriptions, Keywords: []string{
			"subscription", "premium", "membership", "renewal", "prime",
		}},
		{Name: models.CategoryTransport, Keywords: []string{
			"fuel", "petrol", "diesel", "parking", "metro", "rickshaw", "cab",
			"taxi", "uber", "ola", "rapido", "bus", "cng",
		}},
		{Name: models.CategoryPayments, Keywords: []string{
			"upi", "paytm", "phonepe", "google pay", "gpay", "payment",
			"transfer", "neft", "imps", "rtgs",
		}},
	}
}
