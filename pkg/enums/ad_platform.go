package enums

import "fmt"

// AdPlatform identifies the network an ad campaign runs on.
type AdPlatform string

const (
	AdPlatformMeta      AdPlatform = "Meta"
	AdPlatformTikTok    AdPlatform = "TikTok"
	AdPlatformGoogle    AdPlatform = "Google"
	AdPlatformPinterest AdPlatform = "Pinterest"
)

var validAdPlatforms = []AdPlatform{
	AdPlatformMeta,
	AdPlatformTikTok,
	AdPlatformGoogle,
	AdPlatformPinterest,
}

// IsValid checks whether the given platform matches the canonical enum.
func (p AdPlatform) IsValid() bool {
	for _, candidate := range validAdPlatforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseAdPlatform converts raw strings into AdPlatform.
func ParseAdPlatform(value string) (AdPlatform, error) {
	for _, candidate := range validAdPlatforms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ad platform %q", value)
}
