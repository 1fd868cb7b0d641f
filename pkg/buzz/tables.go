package buzz

// Static scoring tables. Loaded once, never mutated at runtime.

// ImpactKeywords maps a high-impact keyword to its additive weight.
// Matching is a case-insensitive substring scan over title + summary;
// each keyword counts at most once per item.
var ImpactKeywords = map[string]float64{
	// US macro
	"cpi": 1.0, "inflation": 1.0, "ppi": 0.9, "gdp": 0.9,
	"payrolls": 1.0, "jobs report": 1.0, "unemployment": 0.9,
	"fomc": 1.0, "fed": 1.0, "rate hike": 1.0, "rate cut": 1.0,
	"pce": 0.9, "retail sales": 0.8, "ism": 0.8, "pmi": 0.8,

	// Europe / LatAm central banks
	"ecb": 1.0, "bank of england": 0.9, "banxico": 0.8,
	"banrep": 0.8, "bcb": 0.8, "bcrp": 0.7,

	// Energy / commodities
	"opec": 1.0, "production cut": 0.9, "supply": 0.7,
	"brent": 0.7, "wti": 0.7,

	// Equities / corporate
	"earnings": 1.0, "guidance": 1.0, "downgrade": 0.9, "upgrade": 0.9,
	"merger": 1.0, "acquisition": 1.0, "antitrust": 0.8, "lawsuit": 0.7,
	"dividend": 0.7, "buyback": 0.7,

	// Crypto
	"etf": 0.9, "sec": 0.8, "hack": 0.9, "halving": 0.7,
	"binance": 0.8, "coinbase": 0.8, "bitcoin": 0.8, "ethereum": 0.7,
}

// KeywordAssets maps a matched keyword to the assets it typically moves.
var KeywordAssets = map[string][]string{
	// USD and US macro
	"fed":          {"USD", "US500", "XAUUSD", "US10Y"},
	"cpi":          {"USD", "US500", "XAUUSD"},
	"inflation":    {"USD", "US500", "XAUUSD"},
	"ppi":          {"USD", "US500"},
	"gdp":          {"USD", "US500"},
	"payrolls":     {"USD", "US500", "XAUUSD"},
	"unemployment": {"USD", "US500"},
	"fomc":         {"USD", "US500", "XAUUSD"},
	"rate hike":    {"USD", "US500", "XAUUSD"},
	"rate cut":     {"USD", "US500", "XAUUSD"},
	"pce":          {"USD", "US500", "XAUUSD"},
	"retail sales": {"USD", "US500"},

	// Europe
	"ecb":             {"EURUSD", "DE40", "EU50"},
	"bank of england": {"GBPUSD", "UK100"},

	// LatAm central banks
	"banxico": {"USDMXN"},
	"banrep":  {"USDCOP"},
	"bcb":     {"USDBRL"},
	"bcrp":    {"USD/PEN"},

	// Energy
	"opec":           {"OIL", "USDCAD", "USDNOK"},
	"production cut": {"OIL"},
	"brent":          {"OIL"},
	"wti":            {"OIL"},

	// US equities -> indices
	"earnings":    {"US500", "US100"},
	"guidance":    {"US500", "US100"},
	"downgrade":   {"US500", "US100"},
	"upgrade":     {"US500", "US100"},
	"merger":      {"US500", "US100"},
	"acquisition": {"US500", "US100"},

	// Crypto
	"bitcoin":  {"BTCUSD"},
	"ethereum": {"ETHUSD"},
	"etf":      {"BTCUSD", "US500"},
	"sec":      {"BTCUSD", "US500"},
	"hack":     {"BTCUSD", "ETHUSD"},
	"binance":  {"BTCUSD", "ETHUSD"},
	"coinbase": {"BTCUSD", "ETHUSD"},
}

// tickerAssets are added whenever a $TICKER-style token appears in the
// original-case text, independent of keyword weights.
var tickerAssets = []string{"US100", "US500"}

// SourceWeights maps a registrable domain to its reputation weight.
// Unknown domains fall back to DefaultSourceWeight.
var SourceWeights = map[string]float64{
	"cnbc.com":           1.0,
	"marketwatch.com":    0.9,
	"wsj.com":            0.9,
	"ft.com":             0.9,
	"cnn.com":            0.7,
	"yahoo.com":          0.8,
	"coindesk.com":       0.8,
	"cointelegraph.com":  0.7,
	"bloomberglinea.com": 0.9,
	"eleconomista.es":    0.8,
	"expansion.com":      0.8,
	"elpais.com":         0.7,
	"prensa.com":         0.8, // Panama
	"anpanama.com":       0.7, // Panama (business)
	"laestrella.com.pa":  0.7, // Panama
	"google.com":         0.6, // Google News (aggregator)
}

// DefaultWatchlist is the stock asset filter offered to users.
var DefaultWatchlist = []string{
	"EURUSD", "GBPUSD", "USDJPY", "USDCHF", "USDCAD", "AUDUSD",
	"XAUUSD", "BTCUSD", "ETHUSD", "US500", "DE40", "OIL",
}

// DefaultFeeds is used when the configuration supplies no feed list.
var DefaultFeeds = []string{
	// English
	"https://www.cnbc.com/id/100003114/device/rss/rss.html", // CNBC Markets
	"https://www.marketwatch.com/feeds/topstories",
	"https://feeds.a.dj.com/rss/RSSMarketsMain.xml", // WSJ Markets
	"https://www.ft.com/markets?format=rss",
	"https://rss.cnn.com/rss/money_latest.rss",
	"https://www.coindesk.com/arc/outboundfeeds/rss/?outputType=xml",
	"https://cointelegraph.com/rss",

	// Spanish (general/finance)
	"https://www.eleconomista.es/rss/rss_economia.php",
	"https://e00-expansion.uecdn.es/rss/economia.xml",
	"https://feeds.elpais.com/mrp/rss/elpais/cincodias/portada",
	// Panama
	"https://www.prensa.com/arcio/rss/economia/",
	"https://www.anpanama.com/rss",
	"https://news.google.com/rss/search?q=mercados+OR+bolsa+OR+econom%C3%ADa&hl=es-419&gl=PA&ceid=PA:es-419",
}
