package swgoh

// Current in-game progression caps. The relic cap is expressed on the
// internal +2-offset scale (displayed relic 9 == internal tier 11).
const (
	MaxRarity    = 7
	MaxLevel     = 85
	MaxGearTier  = 13
	MaxRelicTier = 11

	MaxModPips  = 6
	MaxModLevel = 15
	MaxModTier  = 5

	ModsPerUnit = 6
)

// DefaultLanguage is used when a requested localization is unsupported.
const DefaultLanguage = "eng_us"

// Languages lists the localization bundles the game ships.
var Languages = []string{
	"chs_cn", "cht_cn", "eng_us", "fre_fr", "ger_de", "ind_id", "ita_it",
	"jpn_jp", "kor_kr", "por_br", "rus_ru", "spa_xm", "tha_th", "tur_tr",
}

// SupportedLanguage reports whether lang names a known localization bundle.
func SupportedLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}
