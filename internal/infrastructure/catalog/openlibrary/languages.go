package openlibrary

import "strings"

// languageNames maps MARC language codes, as they appear in edition and work
// language refs, to display names. Codes outside the table fall back to the
// uppercased code.
var languageNames = map[string]string{
	"eng": "English",
	"spa": "Spanish",
	"fre": "French",
	"ger": "German",
	"ita": "Italian",
	"por": "Portuguese",
	"rus": "Russian",
	"jpn": "Japanese",
	"chi": "Chinese",
	"ara": "Arabic",
}

func languageName(key string) string {
	code := strings.TrimPrefix(key, "/languages/")
	if name, ok := languageNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}
