package wordbook

// Config collects the tunables shared by discovery, extraction and the
// batch runner. Zero values are not useful; start from DefaultConfig.
type Config struct {
	// ArchivesURL is the page listing every word page.
	ArchivesURL string `yaml:"archivesUrl"`

	// BaseURL resolves the relative word links found on the archives page.
	BaseURL string `yaml:"baseUrl"`

	// UserAgent is sent with every fetch.
	UserAgent string `yaml:"userAgent"`

	// WordsFile is the discovered word list (Word,URL).
	WordsFile string `yaml:"wordsFile"`

	// OutputFile is the extracted record file (Word,Meaning,Usage).
	OutputFile string `yaml:"outputFile"`

	// DelaySeconds is the pacing delay between successive page fetches.
	DelaySeconds int `yaml:"delaySeconds"`

	// MeaningLabel and UsageLabel are the exact texts of the marker
	// elements that precede the meaning and usage blocks.
	MeaningLabel string `yaml:"meaningLabel"`
	UsageLabel   string `yaml:"usageLabel"`

	// UsageCutoff marks the start of "additional examples" boilerplate;
	// usage text is truncated at its first occurrence.
	UsageCutoff string `yaml:"usageCutoff"`
}

// DefaultConfig returns the configuration matching wordsmith.org's
// A.Word.A.Day pages.
func DefaultConfig() Config {
	return Config{
		ArchivesURL:  "https://wordsmith.org/awad/archives.html",
		BaseURL:      "https://wordsmith.org",
		UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		WordsFile:    "wordsmith_words.csv",
		OutputFile:   "wordsmith_complete.csv",
		DelaySeconds: 1,
		MeaningLabel: "MEANING:",
		UsageLabel:   "USAGE:",
		UsageCutoff:  "See more usage examples",
	}
}
