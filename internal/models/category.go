package models

// Category is the kind of bill. The set is closed.
type Category string

const (
	CategoryWater       Category = "water"
	CategoryElectricity Category = "electricity"
	CategoryHousehold   Category = "household"
	CategoryCreditCard  Category = "credit-card"
	CategoryPhone       Category = "phone"
	CategoryInternet    Category = "internet"
)

// CategoryInfo is the display metadata for a Category.
// Color and BgColor are CSS utility class names used by the web client.
type CategoryInfo struct {
	Label   string `json:"label"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	BgColor string `json:"bgColor"`
}

var categoryOrder = []Category{
	CategoryWater,
	CategoryElectricity,
	CategoryHousehold,
	CategoryCreditCard,
	CategoryPhone,
	CategoryInternet,
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryWater:       {Label: "Water", Icon: "💧", Color: "text-blue-600", BgColor: "bg-blue-50"},
	CategoryElectricity: {Label: "Electricity", Icon: "⚡", Color: "text-yellow-600", BgColor: "bg-yellow-50"},
	CategoryHousehold:   {Label: "Household", Icon: "🏠", Color: "text-green-600", BgColor: "bg-green-50"},
	CategoryCreditCard:  {Label: "Credit Card", Icon: "💳", Color: "text-purple-600", BgColor: "bg-purple-50"},
	CategoryPhone:       {Label: "Phone", Icon: "📱", Color: "text-pink-600", BgColor: "bg-pink-50"},
	CategoryInternet:    {Label: "Internet", Icon: "🌐", Color: "text-indigo-600", BgColor: "bg-indigo-50"},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// LookupCategory returns the metadata for c and whether c is a known category.
func LookupCategory(c Category) (CategoryInfo, bool) {
	info, ok := categoryInfo[c]
	return info, ok
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// Info returns the display metadata, or the zero value for unknown categories.
func (c Category) Info() CategoryInfo {
	return categoryInfo[c]
}

// Label returns the human readable name, falling back to the raw value.
func (c Category) Label() string {
	if info, ok := categoryInfo[c]; ok {
		return info.Label
	}
	return string(c)
}

// PaymentMethod is how a bill gets paid. The set is closed.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank-transfer"
	PaymentCreditCard   PaymentMethod = "credit-card"
	PaymentDebitCard    PaymentMethod = "debit-card"
	PaymentCash         PaymentMethod = "cash"
	PaymentAutoPay      PaymentMethod = "auto-pay"
)

var paymentMethodOrder = []PaymentMethod{
	PaymentBankTransfer,
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentCash,
	PaymentAutoPay,
}

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentBankTransfer: "Bank Transfer",
	PaymentCreditCard:   "Credit Card",
	PaymentDebitCard:    "Debit Card",
	PaymentCash:         "Cash",
	PaymentAutoPay:      "Auto Pay",
}

// PaymentMethods returns every payment method in display order.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethodOrder))
	copy(out, paymentMethodOrder)
	return out
}

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

// Label returns the human readable name, falling back to the raw value.
func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}
