// Package i18n holds the static translation tables for the two supported
// languages. Lookup falls back from the requested language to English and
// finally to a humanized form of the key itself.
package i18n

import "strings"

type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"

	// DefaultLanguage is what the app boots into.
	DefaultLanguage = Arabic
)

// Key is a translation key. Keeping keys typed means a missing entry is a
// compile-time grep away instead of a runtime surprise.
type Key string

const (
	// service-type catalog
	KeyExteriorWash         Key = "exterior-wash"
	KeyInteriorExteriorWash Key = "interior-exterior-wash"
	KeyFullWash             Key = "full-wash"
	KeyPolish               Key = "polish"
	KeyEngineWash           Key = "engine-wash"
	KeyWaxAddOn             Key = "wax-add-on"

	// car sizes
	KeyCarSizeSmall  Key = "car-size-small"
	KeyCarSizeMedium Key = "car-size-medium"
	KeyCarSizeLarge  Key = "car-size-large"

	// payment methods
	KeyPaymentCash    Key = "payment-cash"
	KeyPaymentMachine Key = "payment-machine"
	KeyPaymentNone    Key = "payment-none"

	// report table headers
	KeyHeaderTime          Key = "table-header-time"
	KeyHeaderServiceType   Key = "table-header-service-type"
	KeyHeaderStaff         Key = "table-header-staff"
	KeyHeaderCarSize       Key = "table-header-car-size"
	KeyHeaderPrice         Key = "table-header-price"
	KeyHeaderCommission    Key = "table-header-commission"
	KeyHeaderPayment       Key = "table-header-payment"
	KeyHeaderCoupon        Key = "table-header-coupon"
	KeyHeaderPaid          Key = "table-header-paid"
	KeyYes                 Key = "yes"
	KeyNo                  Key = "no"
	KeyCurrency            Key = "sar"

	// notifications
	KeyLoginFailed              Key = "login-failed"
	KeySignupSuccess            Key = "signup-success"
	KeySignupFailed             Key = "signup-failed"
	KeyServiceSaved             Key = "service-saved"
	KeyServiceSaveFailed        Key = "service-save-failed"
	KeyServicesLoadFailed       Key = "services-load-failed"
	KeyInitialLoadFailed        Key = "initial-load-failed"
	KeyStaffAdded               Key = "staff-added-success"
	KeyStaffAddFailed           Key = "staff-added-failed"
	KeyStaffRemoved             Key = "staff-removed-success"
	KeyStaffRemoveFailed        Key = "staff-removed-failed"
	KeyServiceTypeAdded         Key = "service-type-added-success"
	KeyServiceTypeAddFailed     Key = "service-type-added-failed"
	KeyServiceTypeUpdated       Key = "service-type-updated-success"
	KeyServiceTypeUpdateFailed  Key = "service-type-updated-failed"
	KeyServiceTypeRemoved       Key = "service-type-removed-success"
	KeyServiceTypeRemoveFailed  Key = "service-type-removed-failed"
	KeyInventoryItemAdded       Key = "inventory-item-added-success"
	KeyInventoryItemAddFailed   Key = "inventory-item-added-failed"
	KeyInventoryItemUpdated     Key = "inventory-item-updated-success"
	KeyInventoryItemUpdateFail  Key = "inventory-item-updated-failed"
	KeyInventoryItemRemoved     Key = "inventory-item-removed-success"
	KeyInventoryItemRemoveFail  Key = "inventory-item-removed-failed"
	KeyProductTypeAdded         Key = "product-type-added-success"
	KeyProductTypeAddFailed     Key = "product-type-added-failed"
	KeyProductTypeUpdated       Key = "product-type-updated-success"
	KeyProductTypeUpdateFailed  Key = "product-type-updated-failed"
	KeyProductTypeRemoved       Key = "product-type-removed-success"
	KeyProductTypeRemoveFailed  Key = "product-type-removed-failed"
	KeyExpenseAdded             Key = "expense-added-success"
	KeyExpenseAddFailed         Key = "expense-added-failed"
	KeyExpenseRemoved           Key = "expense-removed-success"
	KeyExpenseRemoveFailed      Key = "expense-removed-failed"

	// KeyInventoryLifespanAlert carries an [ItemName] placeholder.
	KeyInventoryLifespanAlert Key = "inventory-lifespan-alert"
)

var translations = map[Language]map[Key]string{
	English: {
		KeyExteriorWash:         "Exterior Wash",
		KeyInteriorExteriorWash: "Interior & Exterior Wash",
		KeyFullWash:             "Full Wash",
		KeyPolish:               "Polish",
		KeyEngineWash:           "Engine Wash",
		KeyWaxAddOn:             "Wax Add-on",

		KeyCarSizeSmall:  "Small",
		KeyCarSizeMedium: "Medium",
		KeyCarSizeLarge:  "Large",

		KeyPaymentCash:    "Cash",
		KeyPaymentMachine: "Card Machine",
		KeyPaymentNone:    "Not Paid",

		KeyHeaderTime:        "Time",
		KeyHeaderServiceType: "Service Type",
		KeyHeaderStaff:       "Staff",
		KeyHeaderCarSize:     "Car Size",
		KeyHeaderPrice:       "Price",
		KeyHeaderCommission:  "Commission",
		KeyHeaderPayment:     "Payment Method",
		KeyHeaderCoupon:      "Coupon",
		KeyHeaderPaid:        "Paid",
		KeyYes:               "Yes",
		KeyNo:                "No",
		KeyCurrency:          "SAR",

		KeyLoginFailed:             "Login failed",
		KeySignupSuccess:           "Account created",
		KeySignupFailed:            "Sign up failed",
		KeyServiceSaved:            "Service saved",
		KeyServiceSaveFailed:       "Failed to save service",
		KeyServicesLoadFailed:      "Failed to load services data",
		KeyInitialLoadFailed:       "Failed to load initial data",
		KeyStaffAdded:              "Staff member added",
		KeyStaffAddFailed:          "Failed to add staff member",
		KeyStaffRemoved:            "Staff member removed",
		KeyStaffRemoveFailed:       "Failed to remove staff member",
		KeyServiceTypeAdded:        "Service type added",
		KeyServiceTypeAddFailed:    "Failed to add service type",
		KeyServiceTypeUpdated:      "Service type updated",
		KeyServiceTypeUpdateFailed: "Failed to update service type",
		KeyServiceTypeRemoved:      "Service type removed",
		KeyServiceTypeRemoveFailed: "Failed to remove service type",
		KeyInventoryItemAdded:      "Inventory item added",
		KeyInventoryItemAddFailed:  "Failed to add inventory item",
		KeyInventoryItemUpdated:    "Inventory item updated",
		KeyInventoryItemUpdateFail: "Failed to update inventory item",
		KeyInventoryItemRemoved:    "Inventory item removed",
		KeyInventoryItemRemoveFail: "Failed to remove inventory item",
		KeyProductTypeAdded:        "Product type added",
		KeyProductTypeAddFailed:    "Failed to add product type",
		KeyProductTypeUpdated:      "Product type updated",
		KeyProductTypeUpdateFailed: "Failed to update product type",
		KeyProductTypeRemoved:      "Product type removed",
		KeyProductTypeRemoveFailed: "Failed to remove product type",
		KeyExpenseAdded:            "Expense added",
		KeyExpenseAddFailed:        "Failed to add expense",
		KeyExpenseRemoved:          "Expense removed",
		KeyExpenseRemoveFailed:     "Failed to remove expense",

		KeyInventoryLifespanAlert: "[ItemName] is near the end of its lifespan. Consider restocking.",
	},
	Arabic: {
		KeyExteriorWash:         "غسيل خارجي",
		KeyInteriorExteriorWash: "غسيل داخلي وخارجي",
		KeyFullWash:             "غسيل شامل",
		KeyPolish:               "تلميع",
		KeyEngineWash:           "غسيل المحرك",
		KeyWaxAddOn:             "إضافة شمع",

		KeyCarSizeSmall:  "صغيرة",
		KeyCarSizeMedium: "متوسطة",
		KeyCarSizeLarge:  "كبيرة",

		KeyPaymentCash:    "نقدي",
		KeyPaymentMachine: "شبكة",
		KeyPaymentNone:    "غير مدفوع",

		KeyHeaderTime:        "الوقت",
		KeyHeaderServiceType: "نوع الخدمة",
		KeyHeaderStaff:       "الموظف",
		KeyHeaderCarSize:     "حجم السيارة",
		KeyHeaderPrice:       "السعر",
		KeyHeaderCommission:  "العمولة",
		KeyHeaderPayment:     "طريقة الدفع",
		KeyHeaderCoupon:      "قسيمة",
		KeyHeaderPaid:        "مدفوع",
		KeyYes:               "نعم",
		KeyNo:                "لا",
		KeyCurrency:          "ريال",

		KeyLoginFailed:             "فشل تسجيل الدخول",
		KeySignupSuccess:           "تم إنشاء الحساب",
		KeySignupFailed:            "فشل إنشاء الحساب",
		KeyServiceSaved:            "تم حفظ الخدمة",
		KeyServiceSaveFailed:       "فشل حفظ الخدمة",
		KeyServicesLoadFailed:      "فشل تحميل بيانات الخدمات",
		KeyInitialLoadFailed:       "فشل تحميل البيانات",
		KeyStaffAdded:              "تمت إضافة الموظف",
		KeyStaffAddFailed:          "فشلت إضافة الموظف",
		KeyStaffRemoved:            "تمت إزالة الموظف",
		KeyStaffRemoveFailed:       "فشلت إزالة الموظف",
		KeyServiceTypeAdded:        "تمت إضافة نوع الخدمة",
		KeyServiceTypeAddFailed:    "فشلت إضافة نوع الخدمة",
		KeyServiceTypeUpdated:      "تم تحديث نوع الخدمة",
		KeyServiceTypeUpdateFailed: "فشل تحديث نوع الخدمة",
		KeyServiceTypeRemoved:      "تمت إزالة نوع الخدمة",
		KeyServiceTypeRemoveFailed: "فشلت إزالة نوع الخدمة",
		KeyInventoryItemAdded:      "تمت إضافة الصنف",
		KeyInventoryItemAddFailed:  "فشلت إضافة الصنف",
		KeyInventoryItemUpdated:    "تم تحديث الصنف",
		KeyInventoryItemUpdateFail: "فشل تحديث الصنف",
		KeyInventoryItemRemoved:    "تمت إزالة الصنف",
		KeyInventoryItemRemoveFail: "فشلت إزالة الصنف",
		KeyProductTypeAdded:        "تمت إضافة نوع المنتج",
		KeyProductTypeAddFailed:    "فشلت إضافة نوع المنتج",
		KeyProductTypeUpdated:      "تم تحديث نوع المنتج",
		KeyProductTypeUpdateFailed: "فشل تحديث نوع المنتج",
		KeyProductTypeRemoved:      "تمت إزالة نوع المنتج",
		KeyProductTypeRemoveFailed: "فشلت إزالة نوع المنتج",
		KeyExpenseAdded:            "تمت إضافة المصروف",
		KeyExpenseAddFailed:        "فشلت إضافة المصروف",
		KeyExpenseRemoved:          "تمت إزالة المصروف",
		KeyExpenseRemoveFailed:     "فشلت إزالة المصروف",

		KeyInventoryLifespanAlert: "[ItemName] قارب على نهاية عمره الافتراضي. يُنصح بإعادة التخزين.",
	},
}

// T resolves key in lang, falling back to English and finally to a humanized
// rendering of the key itself. The fallback order is load-bearing: callers
// rely on always getting a printable label back.
func T(lang Language, key Key) string {
	if table, ok := translations[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := translations[English][key]; ok {
		return v
	}
	return Humanize(key)
}

// Humanize turns "some-missing-key" into "Some Missing Key".
func Humanize(key Key) string {
	words := strings.Split(strings.ReplaceAll(string(key), "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Supported reports whether lang is one of the shipped languages.
func Supported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// DetectLanguage picks a supported language out of an Accept-Language header,
// defaulting to Arabic.
func DetectLanguage(acceptLanguage string) Language {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		sub := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if Supported(Language(sub)) {
			return Language(sub)
		}
	}
	return DefaultLanguage
}

// DisplayName picks the language-appropriate member of an (arabic, english)
// name pair, tolerating one side being empty.
func DisplayName(lang Language, nameAr, nameEn string) string {
	if lang == Arabic && nameAr != "" {
		return nameAr
	}
	if nameEn != "" {
		return nameEn
	}
	return nameAr
}
