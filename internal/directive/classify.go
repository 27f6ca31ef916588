package directive

import "bytes"

// Classify maps a directive key token (already whitespace-stripped) to a
// Kind. Matching is case-insensitive and prefix-based against the
// canonical name, so "disallowed" still classifies as Disallow. isTypo
// reports whether the key matched one of the known misspellings rather
// than the canonical spelling or one of its legitimate prefixes.
func Classify(key []byte) (kind Kind, isTypo bool) {
	if ok, typo := matchUserAgent(key); ok {
		return UserAgent, typo
	}
	if ok, typo := matchAllow(key); ok {
		return Allow, typo
	}
	if ok, typo := matchDisallow(key); ok {
		return Disallow, typo
	}
	if ok, typo := matchSitemap(key); ok {
		return Sitemap, typo
	}
	if ok, typo := matchCrawlDelay(key); ok {
		return CrawlDelay, typo
	}
	if ok, typo := matchRequestRate(key); ok {
		return RequestRateKind, typo
	}
	if ok, typo := matchContentSignal(key); ok {
		return ContentSignalKind, typo
	}
	return Unknown, false
}

func hasPrefixFold(key []byte, prefix string) bool {
	if len(key) < len(prefix) {
		return false
	}
	return bytes.EqualFold(key[:len(prefix)], []byte(prefix))
}

func hasAnyPrefixFold(key []byte, prefixes ...string) bool {
	for _, p := range prefixes {
		if hasPrefixFold(key, p) {
			return true
		}
	}
	return false
}

func matchUserAgent(key []byte) (ok, typo bool) {
	typo = hasAnyPrefixFold(key, "useragent", "user agent")
	return hasPrefixFold(key, "user-agent") || typo, typo
}

func matchAllow(key []byte) (ok, typo bool) {
	return hasPrefixFold(key, "allow"), false
}

func matchDisallow(key []byte) (ok, typo bool) {
	typo = hasAnyPrefixFold(key, "dissallow", "dissalow", "disalow", "diasllow", "disallaw")
	return hasPrefixFold(key, "disallow") || typo, typo
}

func matchSitemap(key []byte) (ok, typo bool) {
	typo = hasPrefixFold(key, "site-map")
	return hasPrefixFold(key, "sitemap") || typo, typo
}

func matchCrawlDelay(key []byte) (ok, typo bool) {
	typo = hasAnyPrefixFold(key, "crawldelay", "crawl delay")
	return hasPrefixFold(key, "crawl-delay") || typo, typo
}

func matchRequestRate(key []byte) (ok, typo bool) {
	return hasPrefixFold(key, "request-rate"), false
}

func matchContentSignal(key []byte) (ok, typo bool) {
	typo = hasAnyPrefixFold(key, "contentsignal", "content signal")
	return hasPrefixFold(key, "content-signal") || typo, typo
}
