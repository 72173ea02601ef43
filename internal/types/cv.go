package types

import "strings"

// socialNetworkBaseURLs maps each supported network to its profile URL
// prefix.
var socialNetworkBaseURLs = map[string]string{
	"LinkedIn":  "https://linkedin.com/in/",
	"GitHub":    "https://github.com/",
	"Instagram": "https://instagram.com/",
	"Orcid":     "https://orcid.org/",
	"Mastodon":  "https://mastodon.social/",
	"Twitter":   "https://twitter.com/",
}

// KnownSocialNetwork reports whether the network name is supported.
func KnownSocialNetwork(network string) bool {
	_, ok := socialNetworkBaseURLs[network]
	return ok
}

// SocialNetwork is a reference to a profile on a supported network.
type SocialNetwork struct {
	Network  string
	Username string
}

// URL returns the canonical profile URL for the reference. Mastodon
// usernames carry their instance ("@user@instance"), so the URL points at
// that instance instead of a fixed host.
func (s SocialNetwork) URL() string {
	if s.Network == "Mastodon" {
		parts := strings.Split(strings.TrimPrefix(s.Username, "@"), "@")
		if len(parts) == 2 {
			return "https://" + parts[1] + "/@" + parts[0]
		}
	}
	return socialNetworkBaseURLs[s.Network] + s.Username
}

// Section is a titled, ordered list of entries. Entries keep their declared
// order; each carries its own variant tag.
type Section struct {
	Title   string
	Entries []Entry
}

// CurriculumVitae is the validated CV content. It is immutable once built;
// rendering only derives text from it.
type CurriculumVitae struct {
	Name     string
	Label    string
	Location string
	Email    string
	Phone    string
	Website  string

	SocialNetworks []SocialNetwork

	// Sections in input declaration order.
	Sections []Section
}
