package region

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Replacement is a single from→to rewrite entry in a normalizer table.
type Replacement struct {
	From string
	To   string
}

// NormalizerConfig parameterizes province-name canonicalization.  Source
// datasets disagree on spelling conventions, so each analysis domain ships
// its own tables.
type NormalizerConfig struct {
	// SpecialCases are full replacements matched by substring containment in
	// declaration order; the first match short-circuits and its To value is
	// returned as-is.  Containment is intentionally loose: short keys can
	// over-match, and callers depend on that behavior for dataset parity.
	SpecialCases []Replacement

	// Abbreviations are expanded in declaration order.  With
	// AbbrevContains=false an entry matches when the name equals or starts
	// with From; with true it matches anywhere in the name.  All occurrences
	// of From are replaced.
	Abbreviations []Replacement
	AbbrevContains bool

	// Prefixes are leading qualifiers stripped from the name; only the first
	// matching prefix is removed.
	Prefixes []string
}

// Normalizer canonicalizes free-text province labels.  It is pure and safe
// for concurrent use.
type Normalizer struct {
	cfg NormalizerConfig
}

// NewNormalizer builds a Normalizer from cfg.
func NewNormalizer(cfg NormalizerConfig) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// foldTransformer strips combining marks so accented input ("Kepulauan Ríau")
// compares equal to its plain-ASCII form.
var foldTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldMarks(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize canonicalizes raw: fold accents, uppercase, trim, apply
// special-case replacements, expand abbreviations, strip the first matching
// leading prefix, and trim again.  Idempotent for the shipped tables.
func (n *Normalizer) Normalize(raw string) string {
	name := strings.ToUpper(strings.TrimSpace(foldMarks(raw)))

	for _, sc := range n.cfg.SpecialCases {
		if strings.Contains(name, sc.From) {
			return sc.To
		}
	}

	for _, ab := range n.cfg.Abbreviations {
		if n.cfg.AbbrevContains {
			if strings.Contains(name, ab.From) {
				name = strings.ReplaceAll(name, ab.From, ab.To)
			}
		} else if name == ab.From || strings.HasPrefix(name, ab.From) {
			name = strings.ReplaceAll(name, ab.From, ab.To)
		}
	}

	for _, prefix := range n.cfg.Prefixes {
		if strings.HasPrefix(name, prefix) {
			name = name[len(prefix):]
			break
		}
	}

	return strings.TrimSpace(name)
}
