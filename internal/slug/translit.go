package slug

import "strings"

// translitTable maps Cyrillic letters to their Latin spelling.
// Letters are lowercase only, Make lowercases its input first.
var translitTable = map[rune]string{
	'а': "a",
	'б': "b",
	'в': "v",
	'г': "g",
	'д': "d",
	'е': "e",
	'ё': "e",
	'ж': "zh",
	'з': "z",
	'и': "i",
	'й': "j",
	'к': "k",
	'л': "l",
	'м': "m",
	'н': "n",
	'о': "o",
	'п': "p",
	'р': "r",
	'с': "s",
	'т': "t",
	'у': "u",
	'ф': "f",
	'х': "h",
	'ц': "ts",
	'ч': "ch",
	'ш': "sh",
	'щ': "sch",
	'ъ': "",
	'ы': "y",
	'ь': "",
	'э': "e",
	'ю': "yu",
	'я': "ya",
}

// transliterate rewrites Cyrillic runes to Latin, leaving other runes as-is.
func transliterate(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		if latin, ok := translitTable[r]; ok {
			result.WriteString(latin)
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}
