package catalog

// Locale describes one App Store localization target.
type Locale struct {
	Code       string
	Name       string
	NativeName string
	RTL        bool
}

var locales = map[string]Locale{
	"en":      {Code: "en", Name: "English", NativeName: "English"},
	"es":      {Code: "es", Name: "Spanish", NativeName: "Español"},
	"es-mx":   {Code: "es-mx", Name: "Spanish (Mexico)", NativeName: "Español (México)"},
	"fr":      {Code: "fr", Name: "French", NativeName: "Français"},
	"de":      {Code: "de", Name: "German", NativeName: "Deutsch"},
	"it":      {Code: "it", Name: "Italian", NativeName: "Italiano"},
	"pt":      {Code: "pt", Name: "Portuguese (Portugal)", NativeName: "Português"},
	"pt-br":   {Code: "pt-br", Name: "Portuguese (Brazil)", NativeName: "Português (Brasil)"},
	"ja":      {Code: "ja", Name: "Japanese", NativeName: "日本語"},
	"ko":      {Code: "ko", Name: "Korean", NativeName: "한국어"},
	"zh-hans": {Code: "zh-hans", Name: "Chinese (Simplified)", NativeName: "简体中文"},
	"zh-hant": {Code: "zh-hant", Name: "Chinese (Traditional)", NativeName: "繁體中文"},
	"ar":      {Code: "ar", Name: "Arabic", NativeName: "العربية", RTL: true},
	"nl":      {Code: "nl", Name: "Dutch", NativeName: "Nederlands"},
	"ru":      {Code: "ru", Name: "Russian", NativeName: "Русский"},
	"tr":      {Code: "tr", Name: "Turkish", NativeName: "Türkçe"},
	"th":      {Code: "th", Name: "Thai", NativeName: "ไทย"},
	"vi":      {Code: "vi", Name: "Vietnamese", NativeName: "Tiếng Việt"},
	"id":      {Code: "id", Name: "Indonesian", NativeName: "Bahasa Indonesia"},
	"ms":      {Code: "ms", Name: "Malay", NativeName: "Bahasa Melayu"},
	"hi":      {Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
	"pl":      {Code: "pl", Name: "Polish", NativeName: "Polski"},
	"sv":      {Code: "sv", Name: "Swedish", NativeName: "Svenska"},
	"no":      {Code: "no", Name: "Norwegian", NativeName: "Norsk"},
	"da":      {Code: "da", Name: "Danish", NativeName: "Dansk"},
	"fi":      {Code: "fi", Name: "Finnish", NativeName: "Suomi"},
	"el":      {Code: "el", Name: "Greek", NativeName: "Ελληνικά"},
	"cs":      {Code: "cs", Name: "Czech", NativeName: "Čeština"},
	"ro":      {Code: "ro", Name: "Romanian", NativeName: "Română"},
	"hu":      {Code: "hu", Name: "Hungarian", NativeName: "Magyar"},
	"uk":      {Code: "uk", Name: "Ukrainian", NativeName: "Українська"},
	"he":      {Code: "he", Name: "Hebrew", NativeName: "עברית", RTL: true},
	"sk":      {Code: "sk", Name: "Slovak", NativeName: "Slovenčina"},
	"ca":      {Code: "ca", Name: "Catalan", NativeName: "Català"},
	"hr":      {Code: "hr", Name: "Croatian", NativeName: "Hrvatski"},
}

// LocaleByCode looks up a locale by its code.
func LocaleByCode(code string) (Locale, bool) {
	l, ok := locales[code]
	return l, ok
}

// IsRTL reports whether a locale is right-to-left. Unknown codes are
// treated as left-to-right.
func IsRTL(code string) bool {
	return locales[code].RTL
}
