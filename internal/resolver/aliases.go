package resolver

import (
	"sort"

	"StockScout/internal/model"
)

// aliases maps normalized free-text keys to popular listings. The table is a
// fast in-memory cache for the common case; the long tail of globally listed
// issuers is reached through the provider fallback. Read-only after init.
var aliases = map[string]model.CompanyAlias{
	// Tech
	"google":     {Ticker: "GOOGL", DisplayName: "Alphabet Inc. (Google)"},
	"alphabet":   {Ticker: "GOOGL", DisplayName: "Alphabet Inc."},
	"microsoft":  {Ticker: "MSFT", DisplayName: "Microsoft Corporation"},
	"apple":      {Ticker: "AAPL", DisplayName: "Apple Inc."},
	"amazon":     {Ticker: "AMZN", DisplayName: "Amazon.com Inc."},
	"meta":       {Ticker: "META", DisplayName: "Meta Platforms Inc."},
	"facebook":   {Ticker: "META", DisplayName: "Meta Platforms Inc. (Facebook)"},
	"nvidia":     {Ticker: "NVDA", DisplayName: "NVIDIA Corporation"},
	"tesla":      {Ticker: "TSLA", DisplayName: "Tesla Inc."},
	"netflix":    {Ticker: "NFLX", DisplayName: "Netflix Inc."},
	"intel":      {Ticker: "INTC", DisplayName: "Intel Corporation"},
	"amd":        {Ticker: "AMD", DisplayName: "Advanced Micro Devices"},
	"oracle":     {Ticker: "ORCL", DisplayName: "Oracle Corporation"},
	"salesforce": {Ticker: "CRM", DisplayName: "Salesforce Inc."},
	"adobe":      {Ticker: "ADBE", DisplayName: "Adobe Inc."},
	"cisco":      {Ticker: "CSCO", DisplayName: "Cisco Systems Inc."},
	"ibm":        {Ticker: "IBM", DisplayName: "International Business Machines"},

	// Automotive & luxury
	"ferrari":     {Ticker: "RACE", DisplayName: "Ferrari N.V."},
	"lamborghini": {Ticker: "POAHY", DisplayName: "Porsche Automobil Holding SE"},
	"porsche":     {Ticker: "POAHY", DisplayName: "Porsche Automobil Holding SE"},
	"bmw":         {Ticker: "BMWYY", DisplayName: "Bayerische Motoren Werke AG"},
	"mercedes":    {Ticker: "DDAIF", DisplayName: "Mercedes-Benz Group AG"},
	"volkswagen":  {Ticker: "VWAGY", DisplayName: "Volkswagen AG"},

	// Gaming & entertainment
	"nintendo":        {Ticker: "NTDOY", DisplayName: "Nintendo Co., Ltd."},
	"sony":            {Ticker: "SONY", DisplayName: "Sony Group Corporation"},
	"activision":      {Ticker: "ATVI", DisplayName: "Activision Blizzard Inc."},
	"electronic arts": {Ticker: "EA", DisplayName: "Electronic Arts Inc."},
	"ea":              {Ticker: "EA", DisplayName: "Electronic Arts Inc."},
	"take two":        {Ticker: "TTWO", DisplayName: "Take-Two Interactive Software"},
	"ubisoft":         {Ticker: "UBSFY", DisplayName: "Ubisoft Entertainment SA"},

	// Asian tech
	"samsung": {Ticker: "005930.KS", DisplayName: "Samsung Electronics Co., Ltd."},
	"alibaba": {Ticker: "BABA", DisplayName: "Alibaba Group Holding Limited"},
	"tencent": {Ticker: "TCEHY", DisplayName: "Tencent Holdings Limited"},
	"xiaomi":  {Ticker: "1810.HK", DisplayName: "Xiaomi Corporation"},
	"baidu":   {Ticker: "BIDU", DisplayName: "Baidu Inc."},
	"jd":      {Ticker: "JD", DisplayName: "JD.com Inc."},
	"jd.com":  {Ticker: "JD", DisplayName: "JD.com Inc."},

	// Finance
	"jpmorgan":         {Ticker: "JPM", DisplayName: "JPMorgan Chase & Co."},
	"jp morgan":        {Ticker: "JPM", DisplayName: "JPMorgan Chase & Co."},
	"bank of america":  {Ticker: "BAC", DisplayName: "Bank of America Corp."},
	"wells fargo":      {Ticker: "WFC", DisplayName: "Wells Fargo & Company"},
	"goldman sachs":    {Ticker: "GS", DisplayName: "Goldman Sachs Group Inc."},
	"morgan stanley":   {Ticker: "MS", DisplayName: "Morgan Stanley"},
	"visa":             {Ticker: "V", DisplayName: "Visa Inc."},
	"mastercard":       {Ticker: "MA", DisplayName: "Mastercard Inc."},
	"american express": {Ticker: "AXP", DisplayName: "American Express Company"},
	"amex":             {Ticker: "AXP", DisplayName: "American Express Company"},
	"paypal":           {Ticker: "PYPL", DisplayName: "PayPal Holdings Inc."},
	"citigroup":        {Ticker: "C", DisplayName: "Citigroup Inc."},

	// Healthcare
	"johnson & johnson":   {Ticker: "JNJ", DisplayName: "Johnson & Johnson"},
	"johnson and johnson": {Ticker: "JNJ", DisplayName: "Johnson & Johnson"},
	"pfizer":              {Ticker: "PFE", DisplayName: "Pfizer Inc."},
	"moderna":             {Ticker: "MRNA", DisplayName: "Moderna Inc."},
	"abbott":              {Ticker: "ABT", DisplayName: "Abbott Laboratories"},
	"merck":               {Ticker: "MRK", DisplayName: "Merck & Co. Inc."},
	"unitedhealth":        {Ticker: "UNH", DisplayName: "UnitedHealth Group Inc."},
	"eli lilly":           {Ticker: "LLY", DisplayName: "Eli Lilly and Company"},
	"bristol myers":       {Ticker: "BMY", DisplayName: "Bristol-Myers Squibb"},

	// Consumer
	"coca cola":          {Ticker: "KO", DisplayName: "The Coca-Cola Company"},
	"coca-cola":          {Ticker: "KO", DisplayName: "The Coca-Cola Company"},
	"pepsi":              {Ticker: "PEP", DisplayName: "PepsiCo Inc."},
	"pepsico":            {Ticker: "PEP", DisplayName: "PepsiCo Inc."},
	"procter & gamble":   {Ticker: "PG", DisplayName: "Procter & Gamble Co."},
	"procter and gamble": {Ticker: "PG", DisplayName: "Procter & Gamble Co."},
	"walmart":            {Ticker: "WMT", DisplayName: "Walmart Inc."},
	"costco":             {Ticker: "COST", DisplayName: "Costco Wholesale Corp."},
	"nike":               {Ticker: "NKE", DisplayName: "NIKE Inc."},
	"adidas":             {Ticker: "ADDYY", DisplayName: "adidas AG"},
	"starbucks":          {Ticker: "SBUX", DisplayName: "Starbucks Corporation"},
	"mcdonald":           {Ticker: "MCD", DisplayName: "McDonald's Corporation"},
	"mcdonald's":         {Ticker: "MCD", DisplayName: "McDonald's Corporation"},
	"mcdonalds":          {Ticker: "MCD", DisplayName: "McDonald's Corporation"},
	"home depot":         {Ticker: "HD", DisplayName: "The Home Depot Inc."},
	"disney":             {Ticker: "DIS", DisplayName: "The Walt Disney Company"},

	// Energy
	"exxon":          {Ticker: "XOM", DisplayName: "Exxon Mobil Corporation"},
	"exxon mobil":    {Ticker: "XOM", DisplayName: "Exxon Mobil Corporation"},
	"chevron":        {Ticker: "CVX", DisplayName: "Chevron Corporation"},
	"conocophillips": {Ticker: "COP", DisplayName: "ConocoPhillips"},
	"shell":          {Ticker: "SHEL", DisplayName: "Shell plc"},
	"totalenergies":  {Ticker: "TTE", DisplayName: "TotalEnergies SE"},
	"total energies": {Ticker: "TTE", DisplayName: "TotalEnergies SE"},
	"total":          {Ticker: "TTE", DisplayName: "TotalEnergies SE"},
	"bp":             {Ticker: "BP", DisplayName: "BP plc"},

	// French listings
	"lvmh":               {Ticker: "MC.PA", DisplayName: "LVMH Moët Hennessy Louis Vuitton"},
	"hermès":             {Ticker: "RMS.PA", DisplayName: "Hermès International"},
	"hermes":             {Ticker: "RMS.PA", DisplayName: "Hermès International"},
	"kering":             {Ticker: "KER.PA", DisplayName: "Kering SA"},
	"l'oréal":            {Ticker: "OR.PA", DisplayName: "L'Oréal SA"},
	"loreal":             {Ticker: "OR.PA", DisplayName: "L'Oréal SA"},
	"l'oreal":            {Ticker: "OR.PA", DisplayName: "L'Oréal SA"},
	"dior":               {Ticker: "CDI.PA", DisplayName: "Christian Dior SE"},
	"airbus":             {Ticker: "AIR.PA", DisplayName: "Airbus SE"},
	"sanofi":             {Ticker: "SAN.PA", DisplayName: "Sanofi SA"},
	"bnp paribas":        {Ticker: "BNP.PA", DisplayName: "BNP Paribas SA"},
	"bnp":                {Ticker: "BNP.PA", DisplayName: "BNP Paribas SA"},
	"axa":                {Ticker: "CS.PA", DisplayName: "AXA SA"},
	"schneider":          {Ticker: "SU.PA", DisplayName: "Schneider Electric SE"},
	"schneider electric": {Ticker: "SU.PA", DisplayName: "Schneider Electric SE"},
	"safran":             {Ticker: "SAF.PA", DisplayName: "Safran SA"},
	"danone":             {Ticker: "BN.PA", DisplayName: "Danone SA"},
	"stellantis":         {Ticker: "STLA", DisplayName: "Stellantis N.V."},
	"peugeot":            {Ticker: "STLA", DisplayName: "Stellantis N.V. (Peugeot)"},
	"renault":            {Ticker: "RNO.PA", DisplayName: "Renault SA"},
	"carrefour":          {Ticker: "CA.PA", DisplayName: "Carrefour SA"},
	"veolia":             {Ticker: "VIE.PA", DisplayName: "Veolia Environnement SA"},
	"orange":             {Ticker: "ORA.PA", DisplayName: "Orange SA"},
	"michelin":           {Ticker: "ML.PA", DisplayName: "Compagnie Générale des Établissements Michelin"},
	"publicis":           {Ticker: "PUB.PA", DisplayName: "Publicis Groupe SA"},
	"capgemini":          {Ticker: "CAP.PA", DisplayName: "Capgemini SE"},
	"bouygues":           {Ticker: "EN.PA", DisplayName: "Bouygues SA"},
	"vinci":              {Ticker: "DG.PA", DisplayName: "Vinci SA"},
	"saint-gobain":       {Ticker: "SGO.PA", DisplayName: "Compagnie de Saint-Gobain SA"},
	"saint gobain":       {Ticker: "SGO.PA", DisplayName: "Compagnie de Saint-Gobain SA"},
	"legrand":            {Ticker: "LR.PA", DisplayName: "Legrand SA"},
	"essilor":            {Ticker: "EL.PA", DisplayName: "EssilorLuxottica SA"},
	"essilorluxottica":   {Ticker: "EL.PA", DisplayName: "EssilorLuxottica SA"},

	// Automotive traditional
	"toyota":         {Ticker: "TM", DisplayName: "Toyota Motor Corporation"},
	"ford":           {Ticker: "F", DisplayName: "Ford Motor Company"},
	"general motors": {Ticker: "GM", DisplayName: "General Motors Company"},
	"gm":             {Ticker: "GM", DisplayName: "General Motors Company"},
	"honda":          {Ticker: "HMC", DisplayName: "Honda Motor Co., Ltd."},
	"nissan":         {Ticker: "NSANY", DisplayName: "Nissan Motor Co., Ltd."},

	// Telecom
	"verizon":  {Ticker: "VZ", DisplayName: "Verizon Communications Inc."},
	"at&t":     {Ticker: "T", DisplayName: "AT&T Inc."},
	"att":      {Ticker: "T", DisplayName: "AT&T Inc."},
	"t-mobile": {Ticker: "TMUS", DisplayName: "T-Mobile US Inc."},
	"comcast":  {Ticker: "CMCSA", DisplayName: "Comcast Corporation"},

	// Aerospace & defense
	"boeing":           {Ticker: "BA", DisplayName: "The Boeing Company"},
	"lockheed martin":  {Ticker: "LMT", DisplayName: "Lockheed Martin Corporation"},
	"lockheed":         {Ticker: "LMT", DisplayName: "Lockheed Martin Corporation"},
	"raytheon":         {Ticker: "RTX", DisplayName: "Raytheon Technologies Corporation"},
	"northrop grumman": {Ticker: "NOC", DisplayName: "Northrop Grumman Corporation"},

	// Retail & e-commerce
	"target":   {Ticker: "TGT", DisplayName: "Target Corporation"},
	"best buy": {Ticker: "BBY", DisplayName: "Best Buy Co. Inc."},
	"ebay":     {Ticker: "EBAY", DisplayName: "eBay Inc."},
	"shopify":  {Ticker: "SHOP", DisplayName: "Shopify Inc."},

	// Food & beverage
	"nestle":        {Ticker: "NSRGY", DisplayName: "Nestlé S.A."},
	"nestlé":        {Ticker: "NSRGY", DisplayName: "Nestlé S.A."},
	"unilever":      {Ticker: "UL", DisplayName: "Unilever PLC"},
	"mondelez":      {Ticker: "MDLZ", DisplayName: "Mondelez International Inc."},
	"kraft heinz":   {Ticker: "KHC", DisplayName: "The Kraft Heinz Company"},
	"general mills": {Ticker: "GIS", DisplayName: "General Mills Inc."},
}

// aliasKeys, tickerIndex and tickerKeys are derived once from the alias table
// so fuzzy passes iterate in a deterministic order.
var (
	aliasKeys   []string
	tickerIndex map[string]string
	tickerKeys  []string
)

func init() {
	aliasKeys = make([]string, 0, len(aliases))
	for k := range aliases {
		aliasKeys = append(aliasKeys, k)
	}
	sort.Strings(aliasKeys)

	tickerIndex = make(map[string]string)
	for _, k := range aliasKeys {
		a := aliases[k]
		if _, ok := tickerIndex[a.Ticker]; !ok {
			tickerIndex[a.Ticker] = a.DisplayName
		}
	}
	tickerKeys = make([]string, 0, len(tickerIndex))
	for t := range tickerIndex {
		tickerKeys = append(tickerKeys, t)
	}
	sort.Strings(tickerKeys)
}

// defaultSuggestions are returned for an empty query.
var defaultSuggestions = []Candidate{
	{Ticker: "AAPL", Name: "Apple Inc.", Score: 100},
	{Ticker: "GOOGL", Name: "Alphabet Inc. (Google)", Score: 100},
	{Ticker: "MSFT", Name: "Microsoft Corporation", Score: 100},
	{Ticker: "NVDA", Name: "NVIDIA Corporation", Score: 100},
	{Ticker: "TSLA", Name: "Tesla Inc.", Score: 100},
	{Ticker: "AMZN", Name: "Amazon.com Inc.", Score: 100},
	{Ticker: "META", Name: "Meta Platforms Inc.", Score: 100},
	{Ticker: "NFLX", Name: "Netflix Inc.", Score: 100},
}
