package language

// Table lists every known language with its ISO 639 code variants in the
// order: set 1 (short), set 2/T, set 2/B, set 3. The short code is the one
// used for filename tagging.
var Table = []Language{
	{"abkhazian", []string{"ab", "abk", "abk", "abk"}},
	{"afar", []string{"aa", "aar", "aar", "aar"}},
	{"afrikaans", []string{"af", "afr", "afr", "afr"}},
	{"akan", []string{"ak", "aka", "aka", "aka"}},
	{"albanian", []string{"sq", "sqi", "alb", "sqi"}},
	{"amharic", []string{"am", "amh", "amh", "amh"}},
	{"arabic", []string{"ar", "ara", "ara", "ara"}},
	{"aragonese", []string{"an", "arg", "arg", "arg"}},
	{"armenian", []string{"hy", "hye", "arm", "hye"}},
	{"assamese", []string{"as", "asm", "asm", "asm"}},
	{"avaric", []string{"av", "ava", "ava", "ava"}},
	{"avestan", []string{"ae", "ave", "ave", "ave"}},
	{"aymara", []string{"ay", "aym", "aym", "aym"}},
	{"azerbaijani", []string{"az", "aze", "aze", "aze"}},
	{"bambara", []string{"bm", "bam", "bam", "bam"}},
	{"bashkir", []string{"ba", "bak", "bak", "bak"}},
	{"basque", []string{"eu", "eus", "baq", "eus"}},
	{"belarusian", []string{"be", "bel", "bel", "bel"}},
	{"bengali", []string{"bn", "ben", "ben", "ben"}},
	{"bislama", []string{"bi", "bis", "bis", "bis"}},
	{"bosnian", []string{"bs", "bos", "bos", "bos"}},
	{"breton", []string{"br", "bre", "bre", "bre"}},
	{"bulgarian", []string{"bg", "bul", "bul", "bul"}},
	{"burmese", []string{"my", "mya", "bur", "mya"}},
	{"cambodian", []string{"K", "kuyu", "ki", "kik"}},
	{"catalan", []string{"ca", "cat", "cat", "cat"}},
	{"centralKhmer", []string{"km", "khm", "khm", "khm"}},
	{"chamorro", []string{"ch", "cha", "cha", "cha"}},
	{"chechen", []string{"ce", "che", "che", "che"}},
	{"chichewa", []string{"ny", "nya", "nya", "nya"}},
	{"chinese", []string{"zh", "zho", "chi", "zho"}},
	{"churchSlavonic", []string{"cu", "chu", "chu", "chu"}},
	{"chuvash", []string{"cv", "chv", "chv", "chv"}},
	{"cornish", []string{"kw", "cor", "cor", "cor"}},
	{"corsican", []string{"co", "cos", "cos", "cos"}},
	{"cree", []string{"cr", "cre", "cre", "cre"}},
	{"croatian", []string{"hr", "hrv", "hrv", "hrv"}},
	{"czech", []string{"cs", "ces", "cze", "ces"}},
	{"danish", []string{"da", "dan", "dan", "dan"}},
	{"divehi", []string{"dv", "div", "div", "div"}},
	{"dutch", []string{"nl", "nld", "dut", "nld"}},
	{"dzongkha", []string{"dz", "dzo", "dzo", "dzo"}},
	{"english", []string{"en", "eng", "eng", "eng"}},
	{"esperanto", []string{"eo", "epo", "epo", "epo"}},
	{"estonian", []string{"et", "est", "est", "est"}},
	{"ewe", []string{"ee", "ewe", "ewe", "ewe"}},
	{"faroese", []string{"fo", "fao", "fao", "fao"}},
	{"fijian", []string{"fj", "fij", "fij", "fij"}},
	{"finnish", []string{"fi", "fin", "fin", "fin"}},
	{"french", []string{"fr", "fra", "fre", "fra"}},
	{"fulah", []string{"ff", "ful", "ful", "ful"}},
	{"gaelic", []string{"gd", "gla", "gla", "gla"}},
	{"galician", []string{"gl", "glg", "glg", "glg"}},
	{"ganda", []string{"lg", "lug", "lug", "lug"}},
	{"georgian", []string{"ka", "kat", "geo", "kat"}},
	{"german", []string{"de", "deu", "ger", "deu"}},
	{"greek", []string{"el", "ell", "gre", "ell"}},
	{"guarani", []string{"gn", "grn", "grn", "grn"}},
	{"gujarati", []string{"gu", "guj", "guj", "guj"}},
	{"haitian", []string{"ht", "hat", "hat", "hat"}},
	{"hausa", []string{"ha", "hau", "hau", "hau"}},
	{"hebrew", []string{"he", "heb", "heb", "heb"}},
	{"herero", []string{"hz", "her", "her", "her"}},
	{"hindi", []string{"hi", "hin", "hin", "hin"}},
	{"hiriMotu", []string{"ho", "hmo", "hmo", "hmo"}},
	{"hungarian", []string{"hu", "hun", "hun", "hun"}},
	{"icelandic", []string{"is", "isl", "ice", "isl"}},
	{"ido", []string{"io", "ido", "ido", "ido"}},
	{"igbo", []string{"ig", "ibo", "ibo", "ibo"}},
	{"indonesian", []string{"id", "ind", "ind", "ind"}},
	{"interlingua", []string{"ia", "ina", "ina", "ina"}},
	{"interlingue", []string{"ie", "ile", "ile", "ile"}},
	{"inuktitut", []string{"iu", "iku", "iku", "iku"}},
	{"inupiaq", []string{"ik", "ipk", "ipk", "ipk"}},
	{"irish", []string{"ga", "gle", "gle", "gle"}},
	{"italian", []string{"it", "ita", "ita", "ita"}},
	{"japanese", []string{"ja", "jpn", "jpn", "jpn"}},
	{"javanese", []string{"jv", "jav", "jav", "jav"}},
	{"kalaallisut", []string{"kl", "kal", "kal", "kal"}},
	{"kannada", []string{"kn", "kan", "kan", "kan"}},
	{"kanuri", []string{"kr", "kau", "kau", "kau"}},
	{"kashmiri", []string{"ks", "kas", "kas", "kas"}},
	{"kazakh", []string{"kk", "kaz", "kaz", "kaz"}},
	{"kikuyu", []string{"rw", "kin", "kin", "kin"}},
	{"kirghiz", []string{"ky", "kir", "kir", "kir"}},
	{"komi", []string{"kv", "kom", "kom", "kom"}},
	{"kongo", []string{"kg", "kon", "kon", "kon"}},
	{"korean", []string{"ko", "kor", "kor", "kor"}},
	{"kuanyama", []string{"kj", "kua", "kua"}},
	{"kurdish", []string{"ku", "kur", "kur", "kur"}},
	{"lao", []string{"lo", "lao", "lao", "lao"}},
	{"latin", []string{"la", "lat", "lat", "lat"}},
	{"latvian", []string{"lv", "lav", "lav", "lav"}},
	{"limburgan", []string{"li", "lim", "lim", "lim"}},
	{"lingala", []string{"ln", "lin", "lin", "lin"}},
	{"lithuanian", []string{"lt", "lit", "lit", "lit"}},
	{"lubaKatanga", []string{"lu", "lub", "lub", "lub"}},
	{"luxembourgish", []string{"lb", "ltz", "ltz", "ltz"}},
	{"macedonian", []string{"mk", "mkd", "mac", "mkd"}},
	{"malagasy", []string{"mg", "mlg", "mlg", "mlg"}},
	{"malay", []string{"ms", "msa", "may", "msa"}},
	{"malayalam", []string{"ml", "mal", "mal", "mal"}},
	{"maltese", []string{"mt", "mlt", "mlt", "mlt"}},
	{"manx", []string{"gv", "glv", "glv", "glv"}},
	{"maori", []string{"mi", "mri", "mao", "mri"}},
	{"marathi", []string{"mr", "mar", "mar", "mar"}},
	{"marshallese", []string{"mh", "mah", "mah", "mah"}},
	{"mongolian", []string{"mn", "mon", "mon", "mon"}},
	{"nauru", []string{"na", "nau", "nau", "nau"}},
	{"navajo", []string{"nv", "nav", "nav", "nav"}},
	{"ndonga", []string{"ng", "ndo", "ndo", "ndo"}},
	{"nepali", []string{"ne", "nep", "nep", "nep"}},
	{"northernSami", []string{"se", "sme", "sme", "sme"}},
	{"northNdebele", []string{"nd", "nde", "nde", "nde"}},
	{"norwegian", []string{"no", "nor", "nor", "nor"}},
	{"occitan", []string{"oc", "oci", "oci", "oci"}},
	{"ojibwa", []string{"oj", "oji", "oji", "oji"}},
	{"oriya", []string{"or", "ori", "ori", "ori"}},
	{"oromo", []string{"om", "orm", "orm", "orm"}},
	{"ossetian", []string{"os", "oss", "oss", "oss"}},
	{"pali", []string{"pi", "pli", "pli", "pli"}},
	{"pashto", []string{"ps", "pus", "pus", "pus"}},
	{"persian", []string{"fa", "fas", "per", "fas"}},
	{"polish", []string{"pl", "pol", "pol", "pol"}},
	{"portuguese", []string{"pt", "por", "por", "por"}},
	{"punjabi", []string{"pa", "pan", "pan", "pan"}},
	{"quechua", []string{"qu", "que", "que", "que"}},
	{"romanian", []string{"ro", "ron", "rum", "ron"}},
	{"romansh", []string{"rm", "roh", "roh", "roh"}},
	{"rundi", []string{"rn", "run", "run", "run"}},
	{"russian", []string{"ru", "rus", "rus", "rus"}},
	{"samoan", []string{"sm", "smo", "smo", "smo"}},
	{"sango", []string{"sg", "sag", "sag", "sag"}},
	{"sanskrit", []string{"sa", "san", "san", "san"}},
	{"sardinian", []string{"sc", "srd", "srd", "srd"}},
	{"serbian", []string{"sr", "srp", "srp", "srp"}},
	{"shona", []string{"sn", "sna", "sna", "sna"}},
	{"sichuanYi", []string{"ii", "iii", "iii", "iii"}},
	{"sindhi", []string{"sd", "snd", "snd", "snd"}},
	{"sinhala", []string{"si", "sin", "sin", "sin"}},
	{"slovak", []string{"sk", "slk", "slo", "slk"}},
	{"slovenian", []string{"sl", "slv", "slv", "slv"}},
	{"somali", []string{"so", "som", "som", "som"}},
	{"southernSotho", []string{"st", "sot", "sot", "sot"}},
	{"southNdebele", []string{"nr", "nbl", "nbl", "nbl"}},
	{"spanish", []string{"es", "spa", "spa", "spa"}},
	{"sundanese", []string{"su", "sun", "sun", "sun"}},
	{"swahili", []string{"sw", "swa", "swa", "swa"}},
	{"swati", []string{"ss", "ssw", "ssw", "ssw"}},
	{"swedish", []string{"sv", "swe", "swe", "swe"}},
	{"tagalog", []string{"tl", "tgl", "tgl", "tgl"}},
	{"tahitian", []string{"ty", "tah", "tah", "tah"}},
	{"tajik", []string{"tg", "tgk", "tgk", "tgk"}},
	{"tamil", []string{"ta", "tam", "tam", "tam"}},
	{"tatar", []string{"tt", "tat", "tat", "tat"}},
	{"telugu", []string{"te", "tel", "tel", "tel"}},
	{"thai", []string{"th", "tha", "tha", "tha"}},
	{"tibetan", []string{"bo", "bod", "tib", "bod"}},
	{"tigrinya", []string{"ti", "tir", "tir", "tir"}},
	{"tonga", []string{"to", "ton", "ton", "ton"}},
	{"tsonga", []string{"ts", "tso", "tso", "tso"}},
	{"tswana", []string{"tn", "tsn", "tsn", "tsn"}},
	{"turkish", []string{"tr", "tur", "tur", "tur"}},
	{"turkmen", []string{"tk", "tuk", "tuk", "tuk"}},
	{"twi", []string{"tw", "twi", "twi", "twi"}},
	{"uighur", []string{"ug", "uig", "uig", "uig"}},
	{"ukrainian", []string{"uk", "ukr", "ukr", "ukr"}},
	{"urdu", []string{"ur", "urd", "urd", "urd"}},
	{"uzbek", []string{"uz", "uzb", "uzb", "uzb"}},
	{"venda", []string{"ve", "ven", "ven", "ven"}},
	{"vietnamese", []string{"vi", "vie", "vie", "vie"}},
	{"volapuk", []string{"vo", "vol", "vol", "vol"}},
	{"walloon", []string{"wa", "wln", "wln", "wln"}},
	{"welsh", []string{"cy", "cym", "wel", "cym"}},
	{"westernfrisian", []string{"fy", "fry", "fry", "fry"}},
	{"wolof", []string{"wo", "wol", "wol", "wol"}},
	{"xhosa", []string{"xh", "xho", "xho", "xho"}},
	{"yiddish", []string{"yi", "yid", "yid", "yid"}},
	{"yoruba", []string{"yo", "yor", "yor", "yor"}},
	{"zhuang", []string{"za", "zha", "zha", "zha"}},
	{"zulu", []string{"zu", "zul", "zul", "zul"}},
}
